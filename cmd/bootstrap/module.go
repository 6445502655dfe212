package bootstrap

import (
	"find-my-space/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	IntegrationsModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
