package usersrepo

// User is one synthetic row. ID is assigned by the storage engine.
type User struct {
	ID        int64  `db:"id" json:"id"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
}

// CreateUser contains fields for inserting a new user.
type CreateUser struct {
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
}

// FullName is "first last".
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
