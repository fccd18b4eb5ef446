package main

import (
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

type AmericanoStackProps struct {
	awscdk.StackProps
}

func envOr(key, fallback string) *string {
	if v := os.Getenv(key); v != "" {
		return jsii.String(v)
	}
	return jsii.String(fallback)
}

// NewAmericanoStack deploys the API as a single Lambda behind API Gateway.
// Tournament state lives in the function's memory, so concurrency is
// pinned to one instance.
func NewAmericanoStack(scope constructs.Construct, id string, props *AmericanoStackProps) awscdk.Stack {
	var stackProps awscdk.StackProps
	if props != nil {
		stackProps = props.StackProps
	}

	stack := awscdk.NewStack(scope, &id, &stackProps)

	lambdaFn := awslambda.NewFunction(stack, jsii.String("AmericanoApi"), &awslambda.FunctionProps{
		Runtime:                      awslambda.Runtime_PROVIDED_AL2023(),
		Handler:                      jsii.String("bootstrap"),
		Code:                         awslambda.Code_FromAsset(jsii.String("../dist"), nil),
		ReservedConcurrentExecutions: jsii.Number(1),
		Environment: &map[string]*string{
			"APP":                jsii.String("prod"),
			"LOG_LEVEL":          envOr("LOG_LEVEL", "info"),
			"DEFAULT_COURTS":     envOr("DEFAULT_COURTS", "1"),
			"DEFAULT_GAME_POINT": envOr("DEFAULT_GAME_POINT", "21"),
			"FAIRNESS_MODE":      envOr("FAIRNESS_MODE", "balanced"),
		},
	})

	api := awsapigateway.NewLambdaRestApi(stack, jsii.String("AmericanoApiGateway"), &awsapigateway.LambdaRestApiProps{
		Handler: lambdaFn,
	})

	awscdk.NewCfnOutput(stack, jsii.String("ApiUrl"), &awscdk.CfnOutputProps{Value: api.Url()})

	return stack
}

func main() {
	app := awscdk.NewApp(nil)
	NewAmericanoStack(app, "AmericanoStack", &AmericanoStackProps{})
	app.Synth(nil)
}
