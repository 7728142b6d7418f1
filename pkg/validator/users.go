package validator

// UserFields are the attributes the panel accepts when writing a user.
var UserFields = []string{
	"external_id",
	"username",
	"email",
	"first_name",
	"last_name",
	"password",
	"root_admin",
	"language",
}

// UserCreateRequired are the keys a create-user payload must carry.
var UserCreateRequired = []string{"username", "email", "first_name", "last_name", "language"}

// UserCreateRules validates a create-user payload.
func UserCreateRules() []Rule {
	return []Rule{
		Required(UserCreateRequired...),
		Strings("username", "email", "first_name", "last_name", "language", "external_id", "password"),
		Email("email"),
		Known(UserFields...),
	}
}

// UserUpdateRules validates an update-user payload.
func UserUpdateRules() []Rule {
	return []Rule{
		NonEmpty(),
		Strings("username", "email", "first_name", "last_name", "language", "external_id", "password"),
		Email("email"),
		Known(UserFields...),
	}
}
