package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/zizouhuweidi/trivia/internal/service"
	"github.com/zizouhuweidi/trivia/internal/validation"
)

var corsConfig = middleware.CORSConfig{
	AllowOrigins: []string{"*"},
	AllowMethods: []string{
		http.MethodGet,
		http.MethodPatch,
		http.MethodPost,
		http.MethodDelete,
		http.MethodOptions,
	},
	AllowHeaders:  []string{echo.HeaderContentType, echo.HeaderAuthorization},
	ExposeHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
}

// NewServer builds the echo instance serving the trivia API
func NewServer(trivia *service.TriviaService) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = ErrorHandler

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(corsConfig))

	categoryHandler := NewCategoryHandler(trivia)
	questionHandler := NewQuestionHandler(trivia)
	quizHandler := NewQuizHandler(trivia)

	// Category routes
	e.GET("/categories", categoryHandler.ListCategories)
	e.GET("/categories/:id/questions", categoryHandler.ListQuestions)

	// Question routes
	e.GET("/questions", questionHandler.ListQuestions)
	e.POST("/questions", questionHandler.CreateQuestion)
	e.DELETE("/questions/:id", questionHandler.DeleteQuestion)
	e.POST("/questions_search", questionHandler.SearchQuestions)

	// Quiz routes
	e.POST("/quizzes", quizHandler.PlayQuiz)

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	return e
}
