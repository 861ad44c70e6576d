package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"netgrid/internal/domain/request"
	vo "netgrid/internal/domain/request/valueobjects"
	"netgrid/internal/infrastructure/persistence/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.RequestModel{},
		&models.RequestResourceModel{},
		&models.ResourceModel{},
		&models.LocationModel{},
		&models.UserModel{},
	)
	require.NoError(t, err)

	return database
}

func seedRequest(t *testing.T, repo *RequestRepository, userID, locationID uint, connectionType vo.ConnectionType, quantities map[uint]int) *request.Request {
	t.Helper()

	lines := make([]request.Line, 0, len(quantities))
	for resourceID, qty := range quantities {
		line, err := request.NewLine(resourceID, qty)
		require.NoError(t, err)
		lines = append(lines, line)
	}

	req, err := request.NewRequest(userID, locationID, connectionType, lines)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), req))
	return req
}

func decideRequest(t *testing.T, repo *RequestRepository, req *request.Request, status vo.Status, decidedBy uint) {
	t.Helper()

	var err error
	switch status {
	case vo.StatusApproved:
		err = req.Approve(decidedBy)
	case vo.StatusRejected:
		err = req.Reject(decidedBy)
	case vo.StatusCancelled:
		err = req.Cancel(decidedBy)
	}
	require.NoError(t, err)
	require.NoError(t, repo.Update(context.Background(), req))
}

func reportWindow(start, end time.Time) request.ReportFilter {
	return request.ReportFilter{Start: start, End: end}
}
