package showcase

import (
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

const (
	UserProfileName = "user_profile"

	// RegisterButtonTap submits the user profile and registration forms.
	RegisterButtonTap = form.StringEvent("register_button_tap")

	safetyMessage = "We need this, for your... safety!"
)

// UserProfileState keeps every field together with its own error text.
type UserProfileState struct {
	Username        form.ValidatableField[string]
	Age             form.ValidatableField[int]
	AgreeToSellSoul form.ValidatableField[bool]
	UserDescription form.ValidatableField[string]
	Alert           *Alert
}

// NewUserProfileState returns the initial user profile state.
func NewUserProfileState() UserProfileState {
	return UserProfileState{
		Username:        form.NewValidatableField(""),
		Age:             form.NewValidatableField(18),
		AgreeToSellSoul: form.NewValidatableField(false),
		UserDescription: form.NewValidatableField(""),
	}
}

// UserProfile is the user profile showcase.
type UserProfile struct {
	*storeForm[UserProfileState]
}

func userProfileFields() []form.Field[UserProfileState] {
	return []form.Field[UserProfileState]{
		form.BindField("username",
			func(s *UserProfileState) *form.ValidatableField[string] { return &s.Username },
			validator.NonEmpty("Username"),
		),
		form.BindField("age",
			func(s *UserProfileState) *form.ValidatableField[int] { return &s.Age },
			validator.GreaterOrEqual(18, "Age"),
		),
		form.BindField("agreeToSellSoul",
			func(s *UserProfileState) *form.ValidatableField[bool] { return &s.AgreeToSellSoul },
			validator.EqualMessage(true, safetyMessage),
		),
	}
}

// NewUserProfile creates the user profile showcase.
func NewUserProfile(opts Options) (*UserProfile, error) {
	log := opts.logger()
	reducer, err := form.New(userProfileFields(),
		form.WithSubmitEvent(RegisterButtonTap),
		form.WithSuccessEvent(FormValidationSucceed),
		form.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	store := form.NewStore(NewUserProfileState(), []form.Handler[UserProfileState]{
		reducer,
		alertOnSuccess(func(s *UserProfileState) **Alert { return &s.Alert }),
	}, form.WithStoreLogger(log))

	f := &storeForm[UserProfileState]{
		name:   UserProfileName,
		store:  store,
		submit: RegisterButtonTap,
		errors: func(s UserProfileState) map[string]string {
			return map[string]string{
				"username":        s.Username.ErrorText,
				"age":             s.Age.ErrorText,
				"agreeToSellSoul": s.AgreeToSellSoul.ErrorText,
			}
		},
		alert: func(s UserProfileState) *Alert { return s.Alert },
	}

	// Values are committed through the value part of each bundle, so the
	// engine sees "<field>.value" change events.
	f.addSetter("username", setter(store, form.FieldID("username").Value(),
		func(s *UserProfileState) *string { return &s.Username.Value }, parseString))
	f.addSetter("age", setter(store, form.FieldID("age").Value(),
		func(s *UserProfileState) *int { return &s.Age.Value }, parseInt))
	f.addSetter("agreeToSellSoul", setter(store, form.FieldID("agreeToSellSoul").Value(),
		func(s *UserProfileState) *bool { return &s.AgreeToSellSoul.Value }, parseBool))
	f.addSetter("userDescription", setter(store, form.FieldID("userDescription").Value(),
		func(s *UserProfileState) *string { return &s.UserDescription.Value }, parseString))

	return &UserProfile{storeForm: f}, nil
}
