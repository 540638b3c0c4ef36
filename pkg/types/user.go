package types

// User roles.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// ValidRole reports whether role is one of the recognized role values.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// User is an account that can log in. Username is the identifier; the store
// keeps the password as entered (no hashing in this application).
type User struct {
	Username   string
	Password   string
	Role       string
	UserStatus string
}

var userSchema = Schema{
	Table:      TableUser,
	Identifier: "Username",
	Columns:    []string{"Password", "Role", "Status"},
}

func (u *User) Schema() Schema { return userSchema }

func (u *User) ID() any { return u.Username }

func (u *User) Values() []any {
	return []any{u.Password, u.Role, u.UserStatus}
}

func (u *User) ScanDest() []any {
	return []any{&u.Username, &u.Password, &u.Role, &u.UserStatus}
}

func (u *User) Status() string { return u.UserStatus }

func (u *User) SetStatus(status string) { u.UserStatus = status }

// IsAdmin reports whether the user carries the Admin role. Authorization is
// role-based only; no username is special.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
