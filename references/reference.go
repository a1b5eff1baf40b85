// Package references provides the Reference type used to point at entities
// elsewhere in an AsyncAPI document, along with the factory that is the single
// source of truth for pointer shapes. No other package should hand-build
// pointer strings.
package references

import (
	"fmt"
	"strings"
)

// Reference is a pointer to another location in an AsyncAPI document, such as
// #/components/messages/userSignedUp or #/channels/user-events.
type Reference string

var _ fmt.Stringer = (*Reference)(nil)

// Root collection kinds that may be referenced directly below the document root.
const (
	CollectionServers    = "servers"
	CollectionChannels   = "channels"
	CollectionOperations = "operations"
)

// componentKinds enumerates the registry kinds below #/components/, using the
// camelCase plural wire names.
var componentKinds = map[string]bool{
	"schemas":           true,
	"servers":           true,
	"channels":          true,
	"operations":        true,
	"messages":          true,
	"securitySchemes":   true,
	"serverVariables":   true,
	"parameters":        true,
	"correlationIds":    true,
	"replies":           true,
	"replyAddresses":    true,
	"externalDocs":      true,
	"tags":              true,
	"operationTraits":   true,
	"messageTraits":     true,
	"serverBindings":    true,
	"channelBindings":   true,
	"operationBindings": true,
	"messageBindings":   true,
}

// Reference factory - names are inserted verbatim, callers are responsible
// for supplying identifier-pattern-legal names.

// ToRootServer returns a reference to a server in the root servers collection.
func ToRootServer(name string) Reference {
	return Reference("#/servers/" + name)
}

// ToRootChannel returns a reference to a channel in the root channels collection.
func ToRootChannel(name string) Reference {
	return Reference("#/channels/" + name)
}

// ToRootOperation returns a reference to an operation in the root operations collection.
func ToRootOperation(name string) Reference {
	return Reference("#/operations/" + name)
}

// ToComponentSchema returns a reference to a schema in the components registry.
func ToComponentSchema(name string) Reference {
	return component("schemas", name)
}

// ToComponentServer returns a reference to a server in the components registry.
func ToComponentServer(name string) Reference {
	return component("servers", name)
}

// ToComponentChannel returns a reference to a channel in the components registry.
func ToComponentChannel(name string) Reference {
	return component("channels", name)
}

// ToComponentOperation returns a reference to an operation in the components registry.
func ToComponentOperation(name string) Reference {
	return component("operations", name)
}

// ToComponentMessage returns a reference to a message in the components registry.
func ToComponentMessage(name string) Reference {
	return component("messages", name)
}

// ToComponentSecurityScheme returns a reference to a security scheme in the components registry.
func ToComponentSecurityScheme(name string) Reference {
	return component("securitySchemes", name)
}

// ToComponentServerVariable returns a reference to a server variable in the components registry.
func ToComponentServerVariable(name string) Reference {
	return component("serverVariables", name)
}

// ToComponentParameter returns a reference to a parameter in the components registry.
func ToComponentParameter(name string) Reference {
	return component("parameters", name)
}

// ToComponentCorrelationID returns a reference to a correlation ID in the components registry.
func ToComponentCorrelationID(name string) Reference {
	return component("correlationIds", name)
}

// ToComponentReply returns a reference to an operation reply in the components registry.
func ToComponentReply(name string) Reference {
	return component("replies", name)
}

// ToComponentReplyAddress returns a reference to an operation reply address in the components registry.
func ToComponentReplyAddress(name string) Reference {
	return component("replyAddresses", name)
}

// ToComponentExternalDocs returns a reference to an external documentation object in the components registry.
func ToComponentExternalDocs(name string) Reference {
	return component("externalDocs", name)
}

// ToComponentTag returns a reference to a tag in the components registry.
func ToComponentTag(name string) Reference {
	return component("tags", name)
}

// ToComponentOperationTrait returns a reference to an operation trait in the components registry.
func ToComponentOperationTrait(name string) Reference {
	return component("operationTraits", name)
}

// ToComponentMessageTrait returns a reference to a message trait in the components registry.
func ToComponentMessageTrait(name string) Reference {
	return component("messageTraits", name)
}

// ToComponentServerBindings returns a reference to a server bindings object in the components registry.
func ToComponentServerBindings(name string) Reference {
	return component("serverBindings", name)
}

// ToComponentChannelBindings returns a reference to a channel bindings object in the components registry.
func ToComponentChannelBindings(name string) Reference {
	return component("channelBindings", name)
}

// ToComponentOperationBindings returns a reference to an operation bindings object in the components registry.
func ToComponentOperationBindings(name string) Reference {
	return component("operationBindings", name)
}

// ToComponentMessageBindings returns a reference to a message bindings object in the components registry.
func ToComponentMessageBindings(name string) Reference {
	return component("messageBindings", name)
}

func component(kind, name string) Reference {
	return Reference("#/components/" + kind + "/" + name)
}

// IsLocal reports whether the reference points into the current document.
func (r Reference) IsLocal() bool {
	return strings.HasPrefix(string(r), "#/")
}

// IsComponents reports whether the reference points into the components registry.
func (r Reference) IsComponents() bool {
	return strings.HasPrefix(string(r), "#/components/")
}

// Kind returns the collection or registry kind segment of the reference, such
// as "channels" for #/channels/foo or "operationTraits" for
// #/components/operationTraits/foo. Returns an empty string for references
// that do not follow the AsyncAPI pointer grammar.
func (r Reference) Kind() string {
	kind, _, ok := r.target()
	if !ok {
		return ""
	}
	return kind
}

// Name returns the entity name segment of the reference, or an empty string
// for references that do not follow the AsyncAPI pointer grammar.
func (r Reference) Name() string {
	_, name, ok := r.target()
	if !ok {
		return ""
	}
	return name
}

func (r Reference) target() (string, string, bool) {
	if !r.IsLocal() {
		return "", "", false
	}

	segments := strings.Split(strings.TrimPrefix(string(r), "#/"), "/")
	switch {
	case len(segments) == 2:
		return segments[0], segments[1], true
	case len(segments) == 3 && segments[0] == "components":
		return segments[1], segments[2], true
	default:
		return "", "", false
	}
}

// Validate checks that the reference follows the AsyncAPI pointer grammar:
// #/servers/<name>, #/channels/<name>, #/operations/<name> or
// #/components/<kind>/<name> for one of the known registry kinds.
func (r Reference) Validate() error {
	if r == "" {
		return fmt.Errorf("reference is empty")
	}

	if !r.IsLocal() {
		return fmt.Errorf("reference %q must point into the current document (start with #/)", r)
	}

	kind, name, ok := r.target()
	if !ok || name == "" {
		return fmt.Errorf("reference %q does not follow the AsyncAPI pointer grammar", r)
	}

	if r.IsComponents() {
		if !componentKinds[kind] {
			return fmt.Errorf("reference %q points at unknown components kind %q", r, kind)
		}
		return nil
	}

	switch kind {
	case CollectionServers, CollectionChannels, CollectionOperations:
		return nil
	default:
		return fmt.Errorf("reference %q points at unknown root collection %q", r, kind)
	}
}

func (r Reference) String() string {
	return string(r)
}
