package constants

const (
	Borrow = "BORROW"
	Return = "RETURN"
	Login  = "LOGIN"
	Logout = "LOGOUT"
)
