// Package session owns the process-wide authentication session.
//
// Exactly one Manager exists per running client; every screen reads the
// same instance via Current and reacts to changes via Subscribe. The
// session moves between three states:
//
//	Initializing — startup, identity not yet resolved
//	Anonymous    — no valid token
//	Authenticated — valid token plus a resolved user snapshot
//
// Resolve derives the initial state from the stored token: absent means
// Anonymous, present-and-accepted means Authenticated, present-but-rejected
// means the token is purged and the session lands in Anonymous without
// surfacing an error. Login and Register persist the returned token, adopt
// the returned user snapshot, and navigate to the landing view; Logout
// purges the token and does the same. Switching identity always passes
// through Anonymous.
package session
