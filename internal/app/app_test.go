package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/rigledger/internal/config"
	"github.com/GlebRadaev/rigledger/internal/domain"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func memoryConfig() *config.Config {
	return &config.Config{
		Address:       "127.0.0.1:0",
		Storage:       config.StorageMemory,
		LogLvl:        "info",
		AdminLogin:    "admin",
		AdminPassword: "admin-pass",
		JWTSecret:     "secret",
		WorkerID:      1,
		NotifyWorkers: 1,
		ReferrerBonus: decimal.NewFromInt(50),
		SignupBonus:   decimal.NewFromInt(100),
	}
}

func (s *ApplicationSuite) TestStart_Memory() {
	ctx, cancel := context.WithCancel(context.Background())

	s.Require().NoError(s.app.start(ctx, memoryConfig()))
	s.True(s.app.ready)
	s.NotNil(s.app.api)

	admin, err := s.app.srv.AccountService.Get(ctx, "admin")
	s.Require().NoError(err)
	s.Equal(domain.AccountStatusActive, admin.Status)

	cancel()
	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestStart_BadWorkerID() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := memoryConfig()
	cfg.WorkerID = -1

	err := s.app.start(ctx, cfg)
	s.Require().Error(err)
	s.Contains(err.Error(), "can't build id generator")
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}
