package native

import (
	"github.com/pkg/errors"

	"github.com/daimatz/objhook/pkg/objrt"
)

// RecordingIndicatorController draws the recording indicator. It is shown
// while recording, except on a dimmed backlight where it needs the
// luminance override to stay up.
const RecordingIndicatorController = "SBRecordingIndicatorViewController"

// Instance fields of RecordingIndicatorController.
const (
	FieldRecording        = "recording"
	FieldBacklightDimmed  = "backlightDimmed"
	FieldIndicatorVisible = "indicatorVisible"
	FieldLastAnimated     = "lastUpdateAnimated"
	FieldUpdates          = "visibilityUpdates"
)

var indicatorMethods = map[string]objrt.Imp{
	"- init": func(self *objrt.Object, cmd objrt.Selector, args []objrt.Value) (objrt.Value, error) {
		self.Set(FieldRecording, objrt.BoolValue(false))
		self.Set(FieldBacklightDimmed, objrt.BoolValue(false))
		self.Set(FieldIndicatorVisible, objrt.BoolValue(false))
		self.Set(FieldUpdates, objrt.IntValue(0))
		return objrt.ObjectValue(self), nil
	},
	"- isRecording":        getter(FieldRecording),
	"- isBacklightDimmed":  getter(FieldBacklightDimmed),
	"- isIndicatorVisible": getter(FieldIndicatorVisible),
	"- setRecording:": func(self *objrt.Object, cmd objrt.Selector, args []objrt.Value) (objrt.Value, error) {
		self.Set(FieldRecording, args[0])
		return self.Runtime().Send(self, "updateIndicatorVisibility:", objrt.BoolValue(true))
	},
	"- setBacklightDimmed:": func(self *objrt.Object, cmd objrt.Selector, args []objrt.Value) (objrt.Value, error) {
		self.Set(FieldBacklightDimmed, args[0])
		return self.Runtime().Send(self, "updateIndicatorVisibility:", objrt.BoolValue(false))
	},
	"- updateIndicatorVisibility:": func(self *objrt.Object, cmd objrt.Selector, args []objrt.Value) (objrt.Value, error) {
		visible := self.Get(FieldRecording).Bool()
		if visible && self.Get(FieldBacklightDimmed).Bool() {
			force, err := self.Runtime().Send(self, "_shouldForceViewToShowForCurrentBacklightLuminance")
			if err != nil {
				return objrt.Value{}, errors.Wrap(err, "consulting luminance override")
			}
			visible = force.Bool()
		}
		self.Set(FieldIndicatorVisible, objrt.BoolValue(visible))
		self.Set(FieldLastAnimated, args[0])
		self.Set(FieldUpdates, objrt.IntValue(self.Get(FieldUpdates).Int+1))
		return objrt.VoidValue(), nil
	},
	// Privacy: the indicator stays up on a dimmed backlight while recording.
	"- _shouldForceViewToShowForCurrentBacklightLuminance": func(self *objrt.Object, cmd objrt.Selector, args []objrt.Value) (objrt.Value, error) {
		return objrt.BoolValue(self.Get(FieldRecording).Bool()), nil
	},
}

func getter(field string) objrt.Imp {
	return func(self *objrt.Object, cmd objrt.Selector, args []objrt.Value) (objrt.Value, error) {
		return objrt.BoolValue(self.Get(field).Bool()), nil
	}
}

// NewIndicatorController sends +new to the indicator controller class.
func NewIndicatorController(rt *objrt.Runtime) (*objrt.Object, error) {
	cls, ok := rt.LookupClass(RecordingIndicatorController)
	if !ok {
		return nil, errors.Errorf("%s is not loaded", RecordingIndicatorController)
	}
	v, err := rt.Send(cls.Object(), "new")
	if err != nil {
		return nil, err
	}
	return v.Object(), nil
}
