package showcase

import (
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

const RegistrationName = "registration"

// RegistrationState stores plain values next to separate error fields.
type RegistrationState struct {
	Username        string
	Age             int
	AgreeToSellSoul bool
	UserDescription string

	UsernameError        string
	AgeError             string
	AgreeToSellSoulError string
	UserDescriptionError string

	Alert *Alert
}

// Registration is the registration showcase. It validates the same rules as
// UserProfile without ValidatableField.
type Registration struct {
	*storeForm[RegistrationState]
}

func registrationFields() []form.Field[RegistrationState] {
	return []form.Field[RegistrationState]{
		form.Bind("username",
			func(s *RegistrationState) *string { return &s.Username },
			func(s *RegistrationState) *string { return &s.UsernameError },
			validator.NonEmpty("Username"),
		),
		form.Bind("age",
			func(s *RegistrationState) *int { return &s.Age },
			func(s *RegistrationState) *string { return &s.AgeError },
			validator.GreaterOrEqual(18, "Age"),
		),
		form.Bind("agreeToSellSoul",
			func(s *RegistrationState) *bool { return &s.AgreeToSellSoul },
			func(s *RegistrationState) *string { return &s.AgreeToSellSoulError },
			validator.EqualMessage(true, safetyMessage),
		),
	}
}

// NewRegistration creates the registration showcase.
func NewRegistration(opts Options) (*Registration, error) {
	log := opts.logger()
	reducer, err := form.New(registrationFields(),
		form.WithSubmitEvent(RegisterButtonTap),
		form.WithSuccessEvent(FormValidationSucceed),
		form.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	store := form.NewStore(RegistrationState{Age: 18}, []form.Handler[RegistrationState]{
		reducer,
		alertOnSuccess(func(s *RegistrationState) **Alert { return &s.Alert }),
	}, form.WithStoreLogger(log))

	f := &storeForm[RegistrationState]{
		name:   RegistrationName,
		store:  store,
		submit: RegisterButtonTap,
		errors: func(s RegistrationState) map[string]string {
			return map[string]string{
				"username":        s.UsernameError,
				"age":             s.AgeError,
				"agreeToSellSoul": s.AgreeToSellSoulError,
			}
		},
		alert: func(s RegistrationState) *Alert { return s.Alert },
	}

	f.addSetter("username", setter(store, "username",
		func(s *RegistrationState) *string { return &s.Username }, parseString))
	f.addSetter("age", setter(store, "age",
		func(s *RegistrationState) *int { return &s.Age }, parseInt))
	f.addSetter("agreeToSellSoul", setter(store, "agreeToSellSoul",
		func(s *RegistrationState) *bool { return &s.AgreeToSellSoul }, parseBool))
	f.addSetter("userDescription", setter(store, "userDescription",
		func(s *RegistrationState) *string { return &s.UserDescription }, parseString))

	return &Registration{storeForm: f}, nil
}
