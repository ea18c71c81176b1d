package native

import (
	"fmt"

	"github.com/daimatz/objhook/pkg/objrt"
)

// NSObject is the root class.
const NSObject = "NSObject"

var nsObjectMethods = map[string]objrt.Imp{
	"+ new": func(self *objrt.Object, cmd objrt.Selector, args []objrt.Value) (objrt.Value, error) {
		obj := self.Class().New()
		return self.Runtime().Send(obj, "init")
	},
	"- init": func(self *objrt.Object, cmd objrt.Selector, args []objrt.Value) (objrt.Value, error) {
		return objrt.ObjectValue(self), nil
	},
	"- class": func(self *objrt.Object, cmd objrt.Selector, args []objrt.Value) (objrt.Value, error) {
		return objrt.ObjectValue(self.Class().Object()), nil
	},
	"- description": func(self *objrt.Object, cmd objrt.Selector, args []objrt.Value) (objrt.Value, error) {
		return objrt.StringValue(fmt.Sprint(self)), nil
	},
	"- respondsToSelector:": func(self *objrt.Object, cmd objrt.Selector, args []objrt.Value) (objrt.Value, error) {
		return objrt.BoolValue(self.Runtime().RespondsTo(self, args[0].Selector())), nil
	},
	"- isKindOfClass:": func(self *objrt.Object, cmd objrt.Selector, args []objrt.Value) (objrt.Value, error) {
		other := args[0].Object()
		if other == nil || !other.IsClass() {
			return objrt.BoolValue(false), nil
		}
		return objrt.BoolValue(self.Class().IsSubclassOf(other.Class())), nil
	},
}
