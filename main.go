package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/quizmentor/quizmentor-lambda/internal/config"
	"github.com/quizmentor/quizmentor-lambda/internal/container"
	"github.com/quizmentor/quizmentor-lambda/internal/router"
)

func main() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		TopicHandler:    c.TopicContainer.Handler,
		QuestionHandler: c.QuestionContainer.Handler,
		AttemptHandler:  c.AttemptContainer.Handler,
		AnswerHandler:   c.AnswerContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(handler)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	config.Logger().Infof("Server is running on port %s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		config.Logger().WithError(err).Fatal("server stopped")
	}
}
