package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/vit0-9/redirect_detector/pkg/config"
	"github.com/vit0-9/redirect_detector/pkg/detector"
	"github.com/vit0-9/redirect_detector/pkg/utils"
)

const usageText = "redirect-detector [options] <url>\n   redirect-detector [options] serve [--port PORT]"

var errMissingURL = errors.New("usage: redirect-detector [options] <url>")

// newCLI builds the command line application. Flag defaults come from cfg,
// so the environment and .env file act as defaults that flags override.
// Errors are returned from Run instead of exiting, main decides the exit code.
func newCLI(cfg config.Config, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "redirect-detector",
		Usage:     "resolve the final URL of an HTTP redirect chain",
		UsageText: usageText,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "max-redirects", Value: cfg.MaxRedirects, Usage: "maximum number of hops, the first request included"},
			&cli.Int64Flag{Name: "max-body-size", Value: cfg.MaxBodySize, Usage: "maximum number of bytes read from the final response body"},
			&cli.IntFlag{Name: "read-chunk-size", Value: cfg.ReadChunkSize, Usage: "chunk size used while reading response bodies"},
			&cli.DurationFlag{Name: "timeout", Value: cfg.RequestTimeout, Usage: "timeout of each individual request"},
			&cli.StringFlag{Name: "user-agent", Value: cfg.UserAgent, Usage: "User-Agent header, random browser agent when empty"},
			&cli.BoolFlag{Name: "cookies", Usage: "carry cookies from one hop to the next"},
			&cli.StringFlag{Name: "log-level", Value: cfg.LogLevel, Usage: "zerolog level (debug, info, warn, error)"},
			&cli.BoolFlag{Name: "verbose", Usage: "print every hop to stderr"},
		},
		Before: func(c *cli.Context) error {
			utils.InitLogger("redirect-detector", c.String("log-level"), cfg.IsDev())
			return nil
		},
		Action: func(c *cli.Context) error {
			return resolveAction(c, stdout, stderr)
		},
		Commands: []*cli.Command{
			serveCommand(cfg),
		},
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func boundsFromFlags(c *cli.Context) detector.Bounds {
	return detector.Bounds{
		MaxRedirects:  c.Int("max-redirects"),
		MaxBodySize:   c.Int64("max-body-size"),
		ReadChunkSize: c.Int("read-chunk-size"),
	}
}

func clientOptionsFromFlags(c *cli.Context) detector.ClientOptions {
	return detector.ClientOptions{
		Timeout:   c.Duration("timeout"),
		UserAgent: c.String("user-agent"),
		Cookies:   c.Bool("cookies"),
	}
}

func resolveAction(c *cli.Context, stdout, stderr io.Writer) error {
	if c.NArg() == 0 {
		return errMissingURL
	}
	seed := c.Args().First()

	d := detector.New(
		detector.WithBounds(boundsFromFlags(c)),
		detector.WithClientOptions(clientOptionsFromFlags(c)),
		detector.WithLogger(log.Logger),
	)
	res, err := d.Detect(c.Context, seed)
	if err != nil {
		return err
	}

	if c.Bool("verbose") {
		for i, hop := range res.Hops {
			fmt.Fprintf(stderr, "%d %d %s\n", i+1, hop.StatusCode, hop.URL)
		}
	}
	fmt.Fprintln(stdout, res.URL)
	return nil
}

func serveCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "start the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "port", Value: cfg.Port, Usage: "port to listen on"},
		},
		Action: func(c *cli.Context) error {
			app := NewApp(cfg, boundsFromFlags(c), clientOptionsFromFlags(c))

			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			go func() {
				<-ctx.Done()
				log.Info().Msg("Shutting down server...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := app.Shutdown(shutdownCtx); err != nil {
					log.Error().Err(err).Msg("Server shutdown failed")
				}
			}()

			if err := app.Start(":" + c.String("port")); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("failed to start server: %w", err)
			}
			return nil
		},
	}
}
