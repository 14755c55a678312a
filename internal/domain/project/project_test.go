package project

import (
	"testing"
	"time"

	"github.com/fiberops/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProject(t *testing.T) {
	t.Run("creates project in planning", func(t *testing.T) {
		orgID := uuid.New()
		p, err := NewProject(orgID, "Westside FTTH Phase 2", "wst-p2")
		require.NoError(t, err)

		assert.Equal(t, orgID, p.OrgID)
		assert.Equal(t, "Westside FTTH Phase 2", p.Name)
		assert.Equal(t, "WST-P2", p.Code, "code should be uppercased")
		assert.Equal(t, ProjectStatusPlanning, p.Status)
		assert.True(t, p.ContractValue.IsZero())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProject(uuid.New(), "   ", "CODE")
		assert.Error(t, err)
	})

	t.Run("rejects empty code", func(t *testing.T) {
		_, err := NewProject(uuid.New(), "Name", "  ")
		assert.Error(t, err)
	})
}

func TestProjectChangeStatus(t *testing.T) {
	p, err := NewProject(uuid.New(), "Build", "BLD-1")
	require.NoError(t, err)

	require.NoError(t, p.ChangeStatus(ProjectStatusActive))
	assert.Equal(t, ProjectStatusActive, p.Status)

	err = p.ChangeStatus(ProjectStatus("launched"))
	assert.Error(t, err)
	assert.Equal(t, ProjectStatusActive, p.Status)
}

func TestProjectSetContractValue(t *testing.T) {
	p, err := NewProject(uuid.New(), "Build", "BLD-1")
	require.NoError(t, err)

	t.Run("sets and rounds to cents", func(t *testing.T) {
		require.NoError(t, p.SetContractValue(valueobject.NewMoneyUSDFromFloat(125000.999)))
		assert.Equal(t, "125001.00", p.ContractValue.StringFixed(2))
	})

	t.Run("rejects negative value", func(t *testing.T) {
		err := p.SetContractValue(valueobject.NewMoneyUSDFromFloat(-1))
		assert.Error(t, err)
	})

	t.Run("money getter carries USD", func(t *testing.T) {
		m := p.GetContractValueMoney()
		assert.Equal(t, valueobject.USD, m.Currency())
		assert.True(t, m.Amount().Equal(p.ContractValue))
	})
}

func TestProjectSetSchedule(t *testing.T) {
	p, err := NewProject(uuid.New(), "Build", "BLD-1")
	require.NoError(t, err)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 6, 0)

	require.NoError(t, p.SetSchedule(&start, &end))
	assert.Equal(t, &start, p.StartDate)

	bad := start.AddDate(0, 0, -1)
	err = p.SetSchedule(&start, &bad)
	assert.Error(t, err)
}

func TestProjectSetLocation(t *testing.T) {
	p, err := NewProject(uuid.New(), "Build", "BLD-1")
	require.NoError(t, err)

	lat := decimal.NewFromFloat(35.2271)
	lng := decimal.NewFromFloat(-80.8431)
	p.SetLocation(" Charlotte ", "NC", &lat, &lng)

	assert.Equal(t, "Charlotte", p.City)
	assert.Equal(t, "NC", p.State)
	require.NotNil(t, p.Latitude)
	assert.True(t, p.Latitude.Equal(lat))
}
