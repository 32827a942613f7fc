package main

import (
	"context"

	"items-api/internal/config"
	"items-api/internal/handlers"
	"items-api/pkg/lambda"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
)

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := lambda.GetConnectionManager().Initialize(cfg); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    handlers.ResponseHeaders(),
			Body:       `{"ok":false,"error":"service unavailable"}`,
		}, nil
	}

	req := lambda.NewRequest(event)
	itemHandler := handlers.NewItemHandler(container.ItemService)
	helloHandler := handlers.NewHelloHandler(container.ItemService)

	var resp *lambda.Response
	switch {
	case req.Method == "POST" && req.Path == "/items":
		resp, err = itemHandler.HandleCreate(ctx, req)
	case req.Method == "GET" && req.Path == "/items":
		resp, err = itemHandler.HandleList(ctx, req)
	case req.Method == "GET" && req.Path == "/hello":
		resp, err = helloHandler.HandleHello(ctx, req)
	case req.Method == "GET" && req.PathParams["id"] != "":
		resp, err = itemHandler.HandleGet(ctx, req)
	case req.Method == "PUT" && req.PathParams["id"] != "":
		resp, err = itemHandler.HandleUpdate(ctx, req)
	case req.Method == "DELETE" && req.PathParams["id"] != "":
		resp, err = itemHandler.HandleDelete(ctx, req)
	default:
		resp = &lambda.Response{
			StatusCode: 404,
			Headers:    handlers.ResponseHeaders(),
			Body:       []byte(`{"ok":false,"error":"not found"}`),
		}
	}

	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    handlers.ResponseHeaders(),
			Body:       `{"ok":false,"error":"internal server error"}`,
		}, nil
	}

	return resp.APIGatewayResponse(), nil
}

func main() {
	awslambda.Start(handler)
}
