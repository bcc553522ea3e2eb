package domain

// CtxKey names the request-context values the auth middleware sets.
type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
)

// Actor identifies the authenticated caller of an operation.
type Actor struct {
	ID    int64
	Email string
	Role  string
}
