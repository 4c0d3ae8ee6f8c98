package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	apperrors "nutrio/internal/errors"
	"nutrio/internal/model"
	"nutrio/internal/service"
	"nutrio/internal/session"
	"nutrio/internal/view"
)

const dobLayout = "2006-01-02"

// ProfileHandler handles the session-protected profile page.
type ProfileHandler struct {
	profileService service.ProfileService
	sessions       *session.Manager
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService, sessions *session.Manager) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, sessions: sessions}
}

// ProfileRequest represents a profile form submission. Values arrive as
// strings from the form and are parsed here; all five are mandatory.
type ProfileRequest struct {
	Age    string `json:"age" form:"age"`
	Gender string `json:"gender" form:"gender"`
	DOB    string `json:"dob" form:"dob"`
	Weight string `json:"weight" form:"weight"`
	Height string `json:"height" form:"height"`
}

// currentSession resolves the session behind the already-validated cookie.
// A nil session means the cookie outlived the server-side state and the
// caller should redirect to login.
func (h *ProfileHandler) currentSession(c echo.Context) (*session.Session, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, nil
	}
	claims, ok := token.Claims.(*session.Claims)
	if !ok {
		return nil, nil
	}
	return h.sessions.Resolve(c.Request().Context(), claims)
}

// Show godoc
// @Summary Render the profile page
// @Tags profile
// @Produce html
// @Success 200 {string} string "profile page"
// @Failure 302 {string} string "redirect to /login"
// @Router /profile [get]
func (h *ProfileHandler) Show(c echo.Context) error {
	sess, err := h.currentSession(c)
	if err != nil || sess == nil {
		return c.Redirect(http.StatusFound, "/login")
	}

	return c.Render(http.StatusOK, "profile.html", view.ProfileData{
		Name:  sess.Name,
		Email: sess.Email,
	})
}

// Save godoc
// @Summary Update the profile
// @Tags profile
// @Accept x-www-form-urlencoded
// @Produce html
// @Param age formData string true "Age"
// @Param gender formData string true "Gender"
// @Param dob formData string true "Date of birth (YYYY-MM-DD)"
// @Param weight formData string true "Weight"
// @Param height formData string true "Height"
// @Success 200 {string} string "profile page with status message"
// @Failure 302 {string} string "redirect to /login"
// @Failure 500 {object} errors.ErrorResponse
// @Router /profile [post]
func (h *ProfileHandler) Save(c echo.Context) error {
	sess, err := h.currentSession(c)
	if err != nil || sess == nil {
		return c.Redirect(http.StatusFound, "/login")
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return h.renderError(c, sess, "All fields are mandatory to proceed.")
	}

	if req.Age == "" || req.Gender == "" || req.DOB == "" || req.Weight == "" || req.Height == "" {
		return h.renderError(c, sess, "All fields are mandatory to proceed.")
	}

	profile, err := parseProfile(&req)
	if err != nil {
		return h.renderError(c, sess, "Invalid profile values provided.")
	}

	if err := h.profileService.Update(c.Request().Context(), sess.Email, profile); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "An error occurred while saving your profile.",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.Render(http.StatusOK, "profile.html", view.ProfileData{
		Name:           sess.Name,
		Email:          sess.Email,
		SuccessMessage: "Profile saved successfully!",
	})
}

func (h *ProfileHandler) renderError(c echo.Context, sess *session.Session, msg string) error {
	return c.Render(http.StatusOK, "profile.html", view.ProfileData{
		Name:         sess.Name,
		Email:        sess.Email,
		ErrorMessage: msg,
	})
}

func parseProfile(req *ProfileRequest) (*model.Profile, error) {
	age, err := strconv.Atoi(req.Age)
	if err != nil {
		return nil, err
	}
	dob, err := time.Parse(dobLayout, req.DOB)
	if err != nil {
		return nil, err
	}
	weight, err := strconv.ParseFloat(req.Weight, 64)
	if err != nil {
		return nil, err
	}
	height, err := strconv.ParseFloat(req.Height, 64)
	if err != nil {
		return nil, err
	}

	return &model.Profile{
		Age:    age,
		Gender: req.Gender,
		DOB:    dob,
		Weight: weight,
		Height: height,
	}, nil
}
