package api

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/immunika/server/domain/entities"
	"github.com/immunika/server/usecase"
)

type UserHandler struct {
	users     *usecase.UserService
	uploadDir string
	logger    *zap.Logger
}

func NewUserHandler(users *usecase.UserService, uploadDir string, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		users:     users,
		uploadDir: uploadDir,
		logger:    logger,
	}
}

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	user, err := h.users.Register(c.Request().Context(), usecase.UserInput{
		Name:            req.Name,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Email:           req.Email,
		Telefone:        req.Telefone,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	})
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Authenticate(c echo.Context) error {
	var req AuthenticateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	token, err := h.users.Authenticate(c.Request().Context(), usecase.Credentials{
		Name:            req.Name,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Email:           req.Email,
	})
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Authentication successful",
		"token":   token,
	})
}

func (h *UserHandler) Get(c echo.Context) error {
	profile, err := h.users.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) Update(c echo.Context) error {
	var req RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	user, err := h.users.Update(c.Request().Context(), c.Param("id"), usecase.UserInput{
		Name:            req.Name,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Email:           req.Email,
		Telefone:        req.Telefone,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	})
	if err != nil {
		return fail(c, h.logger, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":    "Updated User",
		"updateUser": user,
	})
}

func (h *UserHandler) Delete(c echo.Context) error {
	image, err := h.users.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, h.logger, err)
	}
	h.removeImageFile(image)
	return c.JSON(http.StatusOK, echo.Map{"message": "User removed"})
}

// Upload stores the account picture under a fresh uuid filename and removes
// the file it replaces.
func (h *UserHandler) Upload(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return fail(c, h.logger, err)
	}

	filename := uuid.New().String() + filepath.Ext(file.Filename)

	previous, err := h.users.AttachImage(c.Request().Context(), c.Param("id"), filename)
	if err != nil {
		return fail(c, h.logger, err)
	}

	if err := h.saveImageFile(file, filename); err != nil {
		return fail(c, h.logger, err)
	}
	h.removeImageFile(previous)

	return c.JSON(http.StatusOK, echo.Map{"massage": "Imagem adicionada"})
}

func (h *UserHandler) saveImageFile(file *multipart.FileHeader, filename string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(h.uploadDir, filename))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// removeImageFile deletes a stored picture. The placeholder value never maps
// to a real file.
func (h *UserHandler) removeImageFile(name string) {
	if name == "" || name == entities.DefaultUserImage {
		return
	}
	if err := os.Remove(filepath.Join(h.uploadDir, name)); err != nil && !os.IsNotExist(err) {
		h.logger.Warn("failed to remove image file", zap.String("file", name), zap.Error(err))
	}
}
