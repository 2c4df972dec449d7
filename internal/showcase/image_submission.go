package showcase

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

const (
	ImageSubmissionName = "image_submission"

	SubmitButtonTap = form.StringEvent("submit_button_tap")

	selectedPictureID = form.FieldID("selectedPicture")

	imageLoadFailedMessage = "Something went wrong loading the selected image"
	defaultImageTimeout    = 10 * time.Second
)

// DidLoadImage carries a successfully loaded picture back into the form.
type DidLoadImage struct {
	Path  string
	Image LoadedImage
}

func (DidLoadImage) Name() string { return "did_load_image" }

// DidFailToLoadImage reports that the picture at Path could not be loaded.
type DidFailToLoadImage struct {
	Path string
}

func (DidFailToLoadImage) Name() string { return "did_fail_to_load_image" }

// ImageFetching is the loading status of the selected picture.
type ImageFetching int

const (
	ImageNone ImageFetching = iota
	ImageLoading
	ImageLoaded
)

// ImageSubmissionState mixes a ValidatableField with an optional value that
// has a separate error field.
type ImageSubmissionState struct {
	PictureName          form.ValidatableField[string]
	SelectedPicture      *string
	SelectedPictureError string
	ImageStatus          ImageFetching
	Image                LoadedImage
	Alert                *Alert
}

// ImageSubmission is the picture upload showcase. Loading the selected
// picture happens outside the validation engine, in a store task.
type ImageSubmission struct {
	*storeForm[ImageSubmissionState]
}

func imageSubmissionFields() []form.Field[ImageSubmissionState] {
	return []form.Field[ImageSubmissionState]{
		form.BindField("pictureName",
			func(s *ImageSubmissionState) *form.ValidatableField[string] { return &s.PictureName },
			validator.NonEmpty("Picture's name"),
		),
		form.Bind(selectedPictureID,
			func(s *ImageSubmissionState) **string { return &s.SelectedPicture },
			func(s *ImageSubmissionState) *string { return &s.SelectedPictureError },
			validator.Present[string]("You need to select a picture to send"),
		),
	}
}

// imageHandler starts loading a newly selected picture and records the outcome.
type imageHandler struct {
	load    ImageLoader
	timeout time.Duration
	logger  *slog.Logger
}

func (h imageHandler) Reduce(_ context.Context, s *ImageSubmissionState, e form.Event) []form.Event {
	switch e := e.(type) {
	case form.Changed:
		if e.Field != selectedPictureID {
			return nil
		}
		if s.SelectedPicture == nil {
			s.ImageStatus, s.Image = ImageNone, LoadedImage{}
			return nil
		}
		s.ImageStatus = ImageLoading
		path := *s.SelectedPicture
		return []form.Event{form.Task{ID: "load_image", Run: func(ctx context.Context) form.Event {
			return h.loadImage(ctx, path)
		}}}

	case DidLoadImage:
		// Results for a picture that is no longer selected are dropped.
		if !isSelected(s, e.Path) {
			return nil
		}
		s.ImageStatus = ImageLoaded
		s.Image = e.Image

	case DidFailToLoadImage:
		if !isSelected(s, e.Path) {
			return nil
		}
		s.ImageStatus = ImageNone
		s.SelectedPictureError = imageLoadFailedMessage

	case form.StringEvent:
		if e == FormValidationSucceed {
			a := FormValidatedAlert
			s.Alert = &a
		}
	}
	return nil
}

func (h imageHandler) loadImage(ctx context.Context, path string) form.Event {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	img, err := h.load(ctx, path)
	if err != nil {
		h.logger.WarnContext(ctx, "image load failed", slog.String("path", path), logger.Error(err))
		return DidFailToLoadImage{Path: path}
	}
	return DidLoadImage{Path: path, Image: img}
}

func isSelected(s *ImageSubmissionState, path string) bool {
	return s.SelectedPicture != nil && *s.SelectedPicture == path
}

// NewImageSubmission creates the picture upload showcase.
func NewImageSubmission(opts Options) (*ImageSubmission, error) {
	log := opts.logger()
	reducer, err := form.New(imageSubmissionFields(),
		form.WithSubmitEvent(SubmitButtonTap),
		form.WithSuccessEvent(FormValidationSucceed),
		form.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	h := imageHandler{
		load:    opts.ImageLoader,
		timeout: opts.ImageTimeout,
		logger:  log,
	}
	if h.load == nil {
		h.load = DecodeImageFile
	}
	if h.timeout <= 0 {
		h.timeout = defaultImageTimeout
	}

	store := form.NewStore(ImageSubmissionState{}, []form.Handler[ImageSubmissionState]{reducer, h},
		form.WithStoreLogger(log))

	f := &storeForm[ImageSubmissionState]{
		name:   ImageSubmissionName,
		store:  store,
		submit: SubmitButtonTap,
		errors: func(s ImageSubmissionState) map[string]string {
			return map[string]string{
				"pictureName":     s.PictureName.ErrorText,
				"selectedPicture": s.SelectedPictureError,
			}
		},
		alert: func(s ImageSubmissionState) *Alert { return s.Alert },
	}

	f.addSetter("pictureName", setter(store, form.FieldID("pictureName").Value(),
		func(s *ImageSubmissionState) *string { return &s.PictureName.Value }, parseString))
	f.addSetter("selectedPicture", setter(store, selectedPictureID,
		func(s *ImageSubmissionState) **string { return &s.SelectedPicture }, parseOptional))

	return &ImageSubmission{storeForm: f}, nil
}
