package common

// AuthorizationHeaderName is the HTTP header used to carry the access token
// on incoming requests, as "Bearer <token>".
const AuthorizationHeaderName = "Authorization"
