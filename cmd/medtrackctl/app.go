package main

import (
	"context"
	"medtrack-portal/internal/app/config"
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/app/drivers/logger"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/app/services/core/auth"
	"medtrack-portal/internal/app/services/core/gate"
	"medtrack-portal/internal/app/services/core/session"
	adminAPI "medtrack-portal/internal/app/services/medtrack_api/admins"
	authAPI "medtrack-portal/internal/app/services/medtrack_api/auth"
	"medtrack-portal/internal/app/services/shared/apiclient"
	"medtrack-portal/internal/pkg/exceptions"
	"medtrack-portal/internal/pkg/utils"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type cliOptions struct {
	Home       string
	APIBaseUrl string
	Verbose    bool
}

// cliApp is the CLI's wiring: one API client, the file backed session and
// the usecases the commands need.
type cliApp struct {
	Config       *config.InternalConfig
	Log          *zap.Logger
	Out          *logrus.Logger
	SessionStore contracts.SessionStore
	AuthUsecase  contracts.AuthUsecase
	AdminAPI     contracts.AdminAPIClient
}

func newCLIApp(options *cliOptions) (*cliApp, error) {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	if options.APIBaseUrl != "" {
		internalConfig.API.BaseUrl = options.APIBaseUrl
	}

	home, err := resolveHome(options.Home, internalConfig.Session.CLIHomePath)
	if err != nil {
		return nil, err
	}

	log := zap.NewNop()
	if options.Verbose {
		log = logger.NewZapLogger(driverConfig, internalConfig)
	}
	out := logger.NewLogrusLogger(driverConfig, internalConfig, os.Stderr)

	limiter := rate.NewLimiter(rate.Limit(internalConfig.API.MaxRequestsPerSecond), internalConfig.API.Burst)
	api := apiclient.NewAPIClient(internalConfig.API.BaseUrl, internalConfig.API.Timeout(), limiter, log)

	store := session.NewFileSessionStore(home)
	sessionService := session.NewSessionService(store, internalConfig.Session.Secret, internalConfig.Session.TTL(), log)

	return &cliApp{
		Config:       internalConfig,
		Log:          log,
		Out:          out,
		SessionStore: store,
		AuthUsecase:  auth.NewAuthUsecase(authAPI.NewAuthAPIClient(api, log), sessionService, log),
		AdminAPI:     adminAPI.NewAdminAPIClient(api, log),
	}, nil
}

// resolveHome picks the flag, then the configured path, then ~/.medtrack.
func resolveHome(flagValue, configured string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if configured != "" {
		return configured, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", exceptions.ErrSessionFileRead(err, "~")
	}
	return filepath.Join(userHome, ".medtrack"), nil
}

func newRequestContext() context.Context {
	return utils.ContextWithRequestID(context.Background(), uuid.NewString())
}

// context returns a request scoped context bounded by the API timeout.
func (a *cliApp) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(newRequestContext(), a.Config.API.Timeout())
}

// loadSession returns the stored session.
func (a *cliApp) loadSession(ctx context.Context) (*models.Session, error) {
	return a.SessionStore.Load(ctx, "")
}

// adminContext loads the session, demands the admin role and attaches the
// token to ctx.
func (a *cliApp) adminContext(ctx context.Context) (context.Context, error) {
	current, err := a.loadSession(ctx)
	if err != nil {
		return nil, err
	}
	if decision := gate.Decide(current.CurrentUser(), models.RoleAdmin); decision.Outcome != gate.Render {
		return nil, exceptions.ErrAdminSessionRequired(decision.Outcome.String())
	}
	return utils.ContextWithSession(ctx, current), nil
}
