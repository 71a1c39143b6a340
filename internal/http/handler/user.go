package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"skintel.app/core/internal/http/dto"
	"skintel.app/core/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Create(ctx, req.Nickname, req.BirthYear, req.TopConcern)
	if err != nil {
		if errors.Is(err, service.ErrUnknownConcern) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *UserHandler) GetByID(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	user, err := h.userService.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to fetch user", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateProfileAnswers replaces the user's persistent lifestyle answers and,
// when the request carries one, the declared top concern.
func (h *UserHandler) UpdateProfileAnswers(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var req dto.UpdateProfileAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inputs := make([]service.ProfileAnswerInput, 0, len(req.Answers))
	for _, a := range req.Answers {
		inputs = append(inputs, service.ProfileAnswerInput{
			QuestionKey: a.QuestionKey,
			Answer:      a.Answer,
		})
	}

	answers, err := h.userService.UpdateAnswers(ctx, userID, inputs)
	if err != nil {
		h.writeUserError(c, err)
		return
	}

	user, err := h.userService.Get(ctx, userID)
	if err != nil {
		h.writeUserError(c, err)
		return
	}

	if req.TopConcern != nil {
		user, err = h.userService.UpdateProfile(ctx, userID, user.Nickname, user.BirthYear, req.TopConcern)
		if err != nil {
			h.writeUserError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, dto.UpdateProfileAnswersResponse{
		User:    dto.ToUserResponse(user),
		Answers: dto.ToAnswerResponses(answers),
	})
}

func (h *UserHandler) writeUserError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, service.ErrUnknownConcern):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		slog.ErrorContext(ctx, "profile update failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
	}
}

// pathID parses a path parameter as an id, writing the 400 itself on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
