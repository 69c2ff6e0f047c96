package cloud

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

var (
	awsCfg  aws.Config
	awsOnce sync.Once
	awsErr  error

	// loadDefaultConfig é substituível nos testes
	loadDefaultConfig = config.LoadDefaultConfig
)

// GetAWSConfig carrega a configuração da AWS (env vars, profile, IAM role) de forma lazy-singleton.
// A região de cada client é ajustada nas opções do próprio client.
func GetAWSConfig(ctx context.Context) (aws.Config, error) {
	awsOnce.Do(func() {
		awsCfg, awsErr = loadDefaultConfig(ctx)
	})
	return awsCfg, awsErr
}
