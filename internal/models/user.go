package models

import "strconv"

// UserRole represents the available roles for menu gating.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

// User represents an account of any role. Teachers and students may carry a
// department reference; DateJoined is a unix timestamp set at creation.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         UserRole
	Name         string
	Email        string
	Phone        string
	Address      string
	DepartmentID string
	DateJoined   int64
}

// MarshalLine encodes the user for its persisted file.
func (u User) MarshalLine() string {
	return joinLine(
		u.ID,
		u.Username,
		u.PasswordHash,
		string(u.Role),
		u.Name,
		u.Email,
		u.Phone,
		u.Address,
		u.DepartmentID,
		strconv.FormatInt(u.DateJoined, 10),
	)
}

// UnmarshalUserLine decodes one persisted line; ok is false for malformed
// lines, which callers drop.
func UnmarshalUserLine(line string) (User, bool) {
	fields, ok := splitLine(line, 10)
	if !ok {
		return User{}, false
	}
	joined, err := strconv.ParseInt(fields[9], 10, 64)
	if err != nil {
		return User{}, false
	}
	return User{
		ID:           fields[0],
		Username:     fields[1],
		PasswordHash: fields[2],
		Role:         UserRole(fields[3]),
		Name:         fields[4],
		Email:        fields[5],
		Phone:        fields[6],
		Address:      fields[7],
		DepartmentID: fields[8],
		DateJoined:   joined,
	}, true
}
