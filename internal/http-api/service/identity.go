package service

// Identity is the resolved caller of a request: either an end user
// authenticated with a bearer token, or a trusted service authenticated
// with a client certificate (or a service-role token). Service callers
// carry no user identity of their own.
type Identity struct {
	UserID  int64
	Service bool
}
