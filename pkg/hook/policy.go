package hook

import (
	"fmt"

	"github.com/daimatz/objhook/pkg/objrt"
)

const (
	// DefaultClass is the controller that draws the recording indicator.
	DefaultClass = "SBRecordingIndicatorViewController"

	// IndicatorVisibility blocks the indicator's visibility updates.
	IndicatorVisibility = "indicator-visibility"
	// ForceDisplay forces the backlight-luminance override predicate to NO.
	ForceDisplay = "force-display"

	updateVisibilitySignature = "- updateIndicatorVisibility:"
	forceDisplaySignature     = "- _shouldForceViewToShowForCurrentBacklightLuminance"
)

// Policy describes one hook: where it goes and what replaces the original.
type Policy struct {
	Name      string
	Class     string
	Signature string

	// InstalledFormat formats the installed line; %s receives -[Class sel].
	InstalledFormat string

	// Replacement builds the replacement function for the resolved target.
	// The result is handed to intercept.Implement.
	Replacement func(t *Target) interface{}
}

// Target is what a replacement knows about the hook it implements.
type Target struct {
	Policy *Policy
	Method *objrt.Method

	sink    Sink
	metrics *Metrics
}

// Intercepted records one call answered by the replacement.
func (t *Target) Intercepted() {
	t.metrics.observeCall(t.Policy.Name)
}

// Blocked records a suppressed call and emits one blocked event.
func (t *Target) Blocked(self *objrt.Object, cmd objrt.Selector) {
	t.Intercepted()
	class := t.Policy.Class
	if self != nil {
		class = self.Class().Name()
	}
	t.sink.Emit(Event{
		Kind:      EventHookBlocked,
		Hook:      t.Policy.Name,
		Class:     class,
		Signature: t.Policy.Signature,
		Line:      fmt.Sprintf("[-] %s: %s BLOCKED!", class, cmd),
	})
}

// IndicatorPolicies returns the two recording-indicator hooks for className,
// in installation order.
func IndicatorPolicies(className string) []Policy {
	return []Policy{
		{
			Name:            IndicatorVisibility,
			Class:           className,
			Signature:       updateVisibilitySignature,
			InstalledFormat: "[+] Hooked and blocked %s.",
			Replacement: func(t *Target) interface{} {
				return func(self *objrt.Object, cmd objrt.Selector, animated bool) {
					t.Blocked(self, cmd)
				}
			},
		},
		{
			Name:            ForceDisplay,
			Class:           className,
			Signature:       forceDisplaySignature,
			InstalledFormat: "[+] Hooked %s to return NO.",
			Replacement: func(t *Target) interface{} {
				return func(self *objrt.Object, cmd objrt.Selector) bool {
					t.Intercepted()
					return false
				}
			},
		},
	}
}
