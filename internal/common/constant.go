package common

// AuthHeaderName is the HTTP header carrying the access token.
const AuthHeaderName = "Authorization"

// AuthScheme is the token scheme the backend expects, e.g.
// "Authorization: Token <token>".
const AuthScheme = "Token"

// SilentUpdateType marks a PATCH as non-auditable on the backend.
const SilentUpdateType = "SILENT"
