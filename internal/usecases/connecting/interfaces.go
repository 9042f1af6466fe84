package connecting

import (
	"context"

	"github.com/lucidanalytics/lucid-analytics-client/internal/apiclient"
)

// apiCaller é o recorte do cliente HTTP que os gerenciadores precisam
type apiCaller interface {
	Get(ctx context.Context, path string) (*apiclient.Response, error)
	Post(ctx context.Context, path string, body any) (*apiclient.Response, error)
	Delete(ctx context.Context, path string) (*apiclient.Response, error)
}
