package models

// SafeURLString is a URL carried verbatim in API responses. Handlers render
// it with gin's PureJSON so that '&', '<' and '>' in query strings are not
// escaped to \u0026 and the like. json.Marshal escapes them regardless
// of any MarshalJSON on the type.
type SafeURLString string
