package controllers

import (
	"errors"
	"net/http"

	"hotel-website/config"
	"hotel-website/models"
	"hotel-website/services"
	"hotel-website/utils"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "booking_session"

// ---------------------------
// Payload / DTOs
// ---------------------------

type selectDatesRequest struct {
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

type selectRoomRequest struct {
	RoomID uint `json:"room_id" binding:"required"`
}

// Required-field checks live in the workflow so the validation order stays
// fixed; binding here stays loose on purpose.
type submitBookingRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Adults          int    `json:"adults"`
	Children        int    `json:"children"`
	SpecialRequests string `json:"special_requests"`
}

// ---------------------------
// Controller
// ---------------------------

// BookingController exposes the reservation form over HTTP. Form state lives
// in a per-visitor BookingWorkflow addressed by a session cookie.
type BookingController struct {
	api      services.BookingAPI
	sessions *SessionStore
	cfg      *config.Config
}

func NewBookingController(api services.BookingAPI, sessions *SessionStore, cfg *config.Config) *BookingController {
	return &BookingController{api: api, sessions: sessions, cfg: cfg}
}

// session finds the visitor's booking session, creating one (and setting the
// cookie) on first contact.
func (bc *BookingController) session(c *gin.Context) (*bookingSession, error) {
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		if sess, ok := bc.sessions.get(id); ok {
			return sess, nil
		}
	}

	id, err := utils.GenerateSecureToken(16)
	if err != nil {
		return nil, err
	}

	toasts := &toastBuffer{}
	sess := &bookingSession{
		workflow: services.NewBookingWorkflow(bc.api, services.WorkflowConfig{
			MaxRetries: bc.cfg.MaxRetries,
			RetryBase:  bc.cfg.RetryBase,
			Notifier:   toasts,
		}),
		toasts: toasts,
	}
	bc.sessions.put(id, sess)
	c.SetCookie(sessionCookie, id, int(bc.cfg.SessionTTL.Seconds()), "/", "", false, true)
	return sess, nil
}

// workflowError renders a workflow failure, carrying along any toasts the
// workflow raised while handling it.
func workflowError(c *gin.Context, sess *bookingSession, err error) {
	payload := gin.H{"success": false, "notifications": sess.toasts.Drain()}

	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		payload["error"] = verr.Message
		payload["field"] = verr.Field
		c.JSON(http.StatusUnprocessableEntity, payload)
	case errors.Is(err, services.ErrSuperseded):
		payload["error"] = "Your dates changed while we were checking availability; that search was discarded."
		c.JSON(http.StatusConflict, payload)
	default:
		status, msg := upstreamStatus(err)
		payload["error"] = msg
		c.JSON(status, payload)
	}
}

// GetState returns the current form snapshot and drains pending toasts.
func (bc *BookingController) GetState(c *gin.Context) {
	sess, err := bc.session(c)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not create booking session")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"snapshot":      sess.workflow.Snapshot(),
		"notifications": sess.toasts.Drain(),
	})
}

// SelectDates sets the stay dates and runs the availability fetch.
func (bc *BookingController) SelectDates(c *gin.Context) {
	var req selectDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "check_in and check_out are required")
		return
	}

	checkIn, err := models.ParseDate(req.CheckIn)
	if err != nil {
		utils.JSONFieldError(c, http.StatusUnprocessableEntity, "dates", err.Error())
		return
	}
	checkOut, err := models.ParseDate(req.CheckOut)
	if err != nil {
		utils.JSONFieldError(c, http.StatusUnprocessableEntity, "dates", err.Error())
		return
	}
	// The date picker never offers past days; enforce the same here.
	if checkIn.Before(models.Today()) {
		utils.JSONFieldError(c, http.StatusUnprocessableEntity, "dates", "Check-in date cannot be in the past.")
		return
	}

	sess, err := bc.session(c)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not create booking session")
		return
	}

	rooms, err := sess.workflow.SelectDates(c.Request.Context(), checkIn, checkOut)
	if err != nil {
		workflowError(c, sess, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"snapshot":      sess.workflow.Snapshot(),
		"rooms":         rooms,
		"notifications": sess.toasts.Drain(),
	})
}

// SelectRoom picks a room from the visitor's latest availability results.
func (bc *BookingController) SelectRoom(c *gin.Context) {
	var req selectRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "room_id is required")
		return
	}

	sess, err := bc.session(c)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not create booking session")
		return
	}

	if err := sess.workflow.SelectRoom(req.RoomID); err != nil {
		workflowError(c, sess, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"snapshot":      sess.workflow.Snapshot(),
		"notifications": sess.toasts.Drain(),
	})
}

// Submit validates the form and forwards the reservation to the backend.
func (bc *BookingController) Submit(c *gin.Context) {
	var req submitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := bc.session(c)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "could not create booking session")
		return
	}

	created, err := sess.workflow.Submit(c.Request.Context(), services.GuestDetails{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Adults:          req.Adults,
		Children:        req.Children,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		workflowError(c, sess, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"reservation":   created,
		"snapshot":      sess.workflow.Snapshot(),
		"notifications": sess.toasts.Drain(),
	})
}
