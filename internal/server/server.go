package server

import (
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"feedindia/internal/payment"
	"feedindia/internal/store"
	"feedindia/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/securecookie"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/sirupsen/logrus"
)

//go:embed templates static
var uiFS embed.FS
var decoder = form.NewDecoder()

// CognitoClient is the part of the Cognito API used for admin login.
type CognitoClient interface {
	InitiateAuth(ctx context.Context, params *cognitoidentityprovider.InitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.InitiateAuthOutput, error)
}

// Uploader stores generated exports and returns their location.
type Uploader interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

type Service struct {
	logger    *logrus.Logger
	config    *types.Config
	templates *template.Template

	donations store.DonationStore
	accounts  store.AccountDirectory
	sessions  *store.SessionRegistry
	intake    store.DonationStore
	payments  payment.Gateway
	exports   Uploader

	cognitoClient CognitoClient
	cookie        *securecookie.SecureCookie

	jwksCache *jwk.Cache
	jwksURL   string

	server *http.Server
}

// New wires the HTTP service. intake, payments, exports and cognitoClient may
// be nil; the matching features then fall back to their unconfigured
// behaviour. A nil intake keeps dashboard submissions in the donor session
// only.
func New(
	config *types.Config,
	logger *logrus.Logger,
	donations store.DonationStore,
	accounts store.AccountDirectory,
	sessions *store.SessionRegistry,
	intake store.DonationStore,
	payments payment.Gateway,
	exports Uploader,
	cognitoClient CognitoClient,
	jwkCache *jwk.Cache,
	jwksURL string,
) (*Service, error) {
	mux := flow.New()

	s := &Service{
		logger:    logger,
		config:    config,
		donations: donations,
		accounts:  accounts,
		sessions:  sessions,
		intake:    intake,
		payments:  payments,
		exports:   exports,

		cognitoClient: cognitoClient,
		cookie:        newSecureCookie(config, logger),

		jwksCache: jwkCache,
		jwksURL:   jwksURL,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = templates

	s.buildRouter(mux)

	return s, nil
}

// newSecureCookie falls back to random keys when none are configured. Cookies
// issued with random keys do not survive a restart.
func newSecureCookie(config *types.Config, logger *logrus.Logger) *securecookie.SecureCookie {
	hashKey, _ := base64.StdEncoding.DecodeString(config.CookieHashKey)
	blockKey, _ := base64.StdEncoding.DecodeString(config.CookieBlockKey)

	if len(hashKey) == 0 || len(blockKey) == 0 {
		logger.Warn("cookie keys not configured, generating ephemeral keys")
		hashKey = securecookie.GenerateRandomKey(64)
		blockKey = securecookie.GenerateRandomKey(32)
	}

	return securecookie.New(hashKey, blockKey)
}

func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/", s.handleHome, http.MethodGet)
	r.HandleFunc("/donate", s.handleDonate, http.MethodGet)
	r.HandleFunc("/donate/checkout", s.handleDonateCheckout, http.MethodPost)
	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc("/login", s.handleGetLogin, http.MethodGet)
	r.HandleFunc("/login", s.handlePostLogin, http.MethodPost)
	r.HandleFunc("/logout", s.handlePostLogout, http.MethodPost)

	r.Group(func(r *flow.Mux) {
		r.Use(s.DonorSession)

		r.HandleFunc("/dashboard", s.handleGetDashboard, http.MethodGet)
		r.HandleFunc("/dashboard/donations", s.handlePostDonation, http.MethodPost)
		r.HandleFunc("/track", s.handleTrack, http.MethodGet)
	})

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAuth)

		r.HandleFunc("/admin", s.handleAdmin, http.MethodGet)
		r.HandleFunc("/admin/donations/export", s.handleExportDonations, http.MethodPost)
		r.HandleFunc("/admin/donations/:id/status", s.handleUpdateDonationStatus, http.MethodPost)
		r.HandleFunc("/admin/users/:userID", s.handleUserDetail, http.MethodGet)
		r.HandleFunc("/admin/users/:userID/donations/:id/status", s.handleUpdateUserDonationStatus, http.MethodPost)
	})

	staticRoot, err := fs.Sub(uiFS, "static")
	if err != nil {
		s.logger.WithError(err).Fatal("failed to mount static assets")
	}
	r.Handle("/static/...", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))), http.MethodGet)
}

func loadTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"statusDisplay": func(status types.DonationStatus) types.StatusDisplay {
			return types.StatusDisplayFor(status)
		},
		"kindDisplay": func(kind types.DonationKind) types.KindDisplay {
			return types.KindDisplayFor(kind)
		},
		"accountTypeDisplay": func(t types.AccountType) types.AccountTypeDisplay {
			return types.AccountTypeDisplayFor(t)
		},
		"rupees": func(amount int64) string {
			return payment.FormatRupees(amount * 100)
		},
		"optionLabel": types.OptionLabel,
		"statuses": func() []types.DonationStatus {
			return types.DonationStatuses
		},
	}

	t := template.New("").Funcs(funcMap)
	err := fs.WalkDir(uiFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		data, err := fs.ReadFile(uiFS, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		if _, err := t.Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) userIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(contextKeyUserID).(string)
	if !ok {
		return "", fmt.Errorf("user id not found in context")
	}
	return userID, nil
}

func (s *Service) sessionIDFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(contextKeySessionID).(string)
	return sessionID
}

func (s *Service) submitDelay() time.Duration {
	return time.Duration(s.config.SubmitDelayMS) * time.Millisecond
}

func (s *Service) searchDelay() time.Duration {
	return time.Duration(s.config.SearchDelayMS) * time.Millisecond
}
