package handoff

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareMobilePlan(t *testing.T) {
	svc := NewService(NewTemplates(testBusiness()), NewDispatcher(), WithFallbackDelay(2*time.Second))
	defer svc.Close()

	plan := svc.Prepare(owedTransaction(), uaAndroid)

	assert.Equal(t, TargetMobile, plan.Target)
	assert.True(t, strings.HasPrefix(plan.PrimaryURL, "whatsapp://send?text="))
	require.NotEmpty(t, plan.FallbackURL)
	assert.Equal(t, 2*time.Second, plan.FallbackDelay)
	assert.Contains(t, plan.Message, "Selva Seafoods")
}

func TestPrepareDesktopPlanHasNoFallback(t *testing.T) {
	svc := NewService(NewTemplates(testBusiness()), NewDispatcher())
	defer svc.Close()

	plan := svc.Prepare(owedTransaction(), uaDesktop)

	assert.Equal(t, TargetDesktop, plan.Target)
	assert.True(t, strings.HasPrefix(plan.PrimaryURL, "https://web.whatsapp.com/send?text="))
	assert.Empty(t, plan.FallbackURL)
}

func TestMessagesReturnsAllThreeProjections(t *testing.T) {
	svc := NewService(NewTemplates(testBusiness()), NewDispatcher())
	defer svc.Close()

	msgs := svc.Messages(owedTransaction())
	require.Len(t, msgs, 3)
	assert.Contains(t, msgs["owner"], "Owner Copy")
	assert.Contains(t, msgs["customer"], "Dear Selva Seafoods")
	assert.Contains(t, msgs["summary"], "Fish Bill")
}

func TestInjectedDetectorOverridesSniffing(t *testing.T) {
	svc := NewService(NewTemplates(testBusiness()), NewDispatcher(),
		WithDetector(FixedDetector{Target: TargetMobile}))
	defer svc.Close()

	plan := svc.Prepare(owedTransaction(), uaDesktop)
	assert.Equal(t, TargetMobile, plan.Target)
}
