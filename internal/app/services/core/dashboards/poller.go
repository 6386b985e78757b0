package dashboards

import (
	"context"
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/app/models"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/exceptions"
	"medtrack-portal/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Frame is one dashboard snapshot pushed to a live connection. Exactly one
// of Data and Error is set.
type Frame struct {
	Role      models.Role `json:"role"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	FetchedAt string      `json:"fetchedAt"`
}

type SnapshotFunc func(ctx context.Context) (interface{}, error)

// Feed resolves the dashboard snapshot of each role.
type Feed struct {
	Patients    contracts.PatientUsecase
	Doctors     contracts.DoctorUsecase
	Pharmacists contracts.PharmacistUsecase
	Admins      contracts.AdminUsecase
}

// SnapshotFor returns the fetch function of the session's role together
// with the banner shown when it fails.
func (f *Feed) SnapshotFor(session *models.Session) (SnapshotFunc, string, error) {
	user := session.CurrentUser()
	if !user.HasRole() {
		return nil, "", exceptions.ErrInvalidRoleType(nil)
	}

	switch user.Role {
	case models.RolePatient:
		return func(ctx context.Context) (interface{}, error) {
			return f.Patients.Dashboard(ctx)
		}, constvars.ErrClientLoadPatientDashboard, nil
	case models.RoleDoctor:
		return func(ctx context.Context) (interface{}, error) {
			return f.Doctors.Dashboard(ctx, session)
		}, constvars.ErrClientLoadDoctorDashboard, nil
	case models.RolePharmacist:
		return func(ctx context.Context) (interface{}, error) {
			return f.Pharmacists.Dashboard(ctx)
		}, constvars.ErrClientLoadPharmacistData, nil
	case models.RoleAdmin:
		return func(ctx context.Context) (interface{}, error) {
			return f.Admins.Dashboard(ctx)
		}, constvars.ErrClientLoadAdminDashboard, nil
	}
	return nil, "", exceptions.ErrInvalidRoleType(nil)
}

// Poller fetches a snapshot right away and then once per Interval until
// its context ends or the publisher reports the connection gone.
type Poller struct {
	Role         models.Role
	Interval     time.Duration
	Fetch        SnapshotFunc
	ErrorMessage string
	Log          *zap.Logger

	now func() time.Time
}

func NewPoller(role models.Role, interval time.Duration, fetch SnapshotFunc, errorMessage string, logger *zap.Logger) *Poller {
	return &Poller{
		Role:         role,
		Interval:     interval,
		Fetch:        fetch,
		ErrorMessage: errorMessage,
		Log:          logger,
		now:          time.Now,
	}
}

func (p *Poller) Run(ctx context.Context, publish func([]byte) bool) {
	requestID := utils.GetRequestIDFromContext(ctx)
	interval := p.Interval
	if interval <= 0 {
		interval = time.Duration(constvars.DefaultDashboardRefreshInSecond) * time.Second
	}
	p.Log.Info("Poller.Run called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, string(p.Role)),
		zap.Duration(constvars.LoggingIntervalKey, interval),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if !publish(p.poll(ctx)) {
			p.Log.Info("Poller.Run stopped, connection closed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return
		}

		select {
		case <-ctx.Done():
			p.Log.Info("Poller.Run stopped",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return
		case <-ticker.C:
		}
	}
}

func (p *Poller) poll(ctx context.Context) []byte {
	frame := Frame{
		Role:      p.Role,
		FetchedAt: p.now().UTC().Format(time.RFC3339),
	}

	data, err := p.Fetch(ctx)
	if err != nil {
		p.Log.Error("Poller.poll error fetching snapshot",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestIDFromContext(ctx)),
			zap.Error(err),
		)
		frame.Error = p.ErrorMessage
	} else {
		frame.Data = data
	}

	payload, err := json.Marshal(frame)
	if err != nil {
		payload, _ = json.Marshal(Frame{Role: p.Role, Error: p.ErrorMessage, FetchedAt: frame.FetchedAt})
	}
	return payload
}
