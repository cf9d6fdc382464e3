package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token on
// inbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerSchemePrefix is the required prefix of the Authorization header,
// including the trailing space.
const BearerSchemePrefix = "Bearer "
