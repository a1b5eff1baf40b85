package asyncapi

import (
	"strconv"

	"github.com/speakeasy-api/asyncapi/references"
	"github.com/speakeasy-api/asyncapi/validation"
)

// refLocation points at one reference occurrence in the document.
type refLocation struct {
	// where describes the location for diagnostics.
	where string
	// ref is the reference held at this location.
	ref references.Reference
}

// validateReferences checks that every reference in the document resolves to
// an existing entry in the collection or registry its pointer names.
// References with invalid grammar are skipped here, the holding slot's
// Validate reports those.
func (a *AsyncAPI) validateReferences() []error {
	errs := []error{}

	for _, loc := range collectReferences(a) {
		if loc.ref.Validate() != nil {
			continue
		}
		if !a.resolves(loc.ref) {
			errs = append(errs, validation.NewError("%s references %q which does not resolve to an existing entry", loc.where, loc.ref))
		}
	}

	return errs
}

// resolves reports whether the reference's target entry exists in the
// document.
func (a *AsyncAPI) resolves(ref references.Reference) bool {
	name := ref.Name()

	if !ref.IsComponents() {
		switch ref.Kind() {
		case references.CollectionServers:
			return a.Servers.Has(name)
		case references.CollectionChannels:
			return a.Channels.Has(name)
		case references.CollectionOperations:
			return a.Operations.Has(name)
		}
		return false
	}

	c := a.Components
	if c == nil {
		return false
	}

	switch ref.Kind() {
	case "schemas":
		return c.Schemas.Has(name)
	case "servers":
		return c.Servers.Has(name)
	case "channels":
		return c.Channels.Has(name)
	case "operations":
		return c.Operations.Has(name)
	case "messages":
		return c.Messages.Has(name)
	case "securitySchemes":
		return c.SecuritySchemes.Has(name)
	case "serverVariables":
		return c.ServerVariables.Has(name)
	case "parameters":
		return c.Parameters.Has(name)
	case "correlationIds":
		return c.CorrelationIDs.Has(name)
	case "replies":
		return c.Replies.Has(name)
	case "replyAddresses":
		return c.ReplyAddresses.Has(name)
	case "externalDocs":
		return c.ExternalDocs.Has(name)
	case "tags":
		return c.Tags.Has(name)
	case "operationTraits":
		return c.OperationTraits.Has(name)
	case "messageTraits":
		return c.MessageTraits.Has(name)
	case "serverBindings":
		return c.ServerBindings.Has(name)
	case "channelBindings":
		return c.ChannelBindings.Has(name)
	case "operationBindings":
		return c.OperationBindings.Has(name)
	case "messageBindings":
		return c.MessageBindings.Has(name)
	}

	return false
}

// refCollector accumulates every reference occurrence reachable through the
// document tree, descending into inline objects wherever a slot holds one.
type refCollector struct {
	locations []refLocation
}

// slotRef records the slot's reference, or returns the inline object so the
// caller can descend into it.
func slotRef[T any, V modelPtr[T]](c *refCollector, where string, slot *Referenced[T, V]) *T {
	if slot == nil {
		return nil
	}
	if slot.IsReference() {
		c.locations = append(c.locations, refLocation{where: where, ref: slot.GetReference()})
		return nil
	}
	return slot.GetObject()
}

func collectReferences(a *AsyncAPI) []refLocation {
	c := &refCollector{}

	c.tags("info", a.Info.Tags)
	slotRef(c, "info.externalDocs", a.Info.ExternalDocs)

	for name, slot := range a.Servers.All() {
		c.server("servers."+name, slotRef(c, "servers."+name, slot))
	}
	for name, slot := range a.Channels.All() {
		c.channel("channels."+name, slotRef(c, "channels."+name, slot))
	}
	for name, slot := range a.Operations.All() {
		c.operation("operations."+name, slotRef(c, "operations."+name, slot))
	}

	if a.Components != nil {
		c.components(a.Components)
	}

	return c.locations
}

func (c *refCollector) components(comps *Components) {
	for name, slot := range comps.Schemas.All() {
		slotRef(c, "components.schemas."+name, slot)
	}
	for name, slot := range comps.Servers.All() {
		c.server("components.servers."+name, slotRef(c, "components.servers."+name, slot))
	}
	for name, slot := range comps.Channels.All() {
		c.channel("components.channels."+name, slotRef(c, "components.channels."+name, slot))
	}
	for name, slot := range comps.Operations.All() {
		c.operation("components.operations."+name, slotRef(c, "components.operations."+name, slot))
	}
	for name, slot := range comps.Messages.All() {
		c.message("components.messages."+name, slotRef(c, "components.messages."+name, slot))
	}
	for name, slot := range comps.SecuritySchemes.All() {
		slotRef(c, "components.securitySchemes."+name, slot)
	}
	for name, slot := range comps.ServerVariables.All() {
		slotRef(c, "components.serverVariables."+name, slot)
	}
	for name, slot := range comps.Parameters.All() {
		slotRef(c, "components.parameters."+name, slot)
	}
	for name, slot := range comps.CorrelationIDs.All() {
		slotRef(c, "components.correlationIds."+name, slot)
	}
	for name, slot := range comps.Replies.All() {
		c.reply("components.replies."+name, slotRef(c, "components.replies."+name, slot))
	}
	for name, slot := range comps.ReplyAddresses.All() {
		slotRef(c, "components.replyAddresses."+name, slot)
	}
	for name, slot := range comps.ExternalDocs.All() {
		slotRef(c, "components.externalDocs."+name, slot)
	}
	for name, slot := range comps.Tags.All() {
		c.tag("components.tags."+name, slotRef(c, "components.tags."+name, slot))
	}
	for name, slot := range comps.OperationTraits.All() {
		c.operationTrait("components.operationTraits."+name, slotRef(c, "components.operationTraits."+name, slot))
	}
	for name, slot := range comps.MessageTraits.All() {
		c.messageTrait("components.messageTraits."+name, slotRef(c, "components.messageTraits."+name, slot))
	}
	for name, slot := range comps.ServerBindings.All() {
		slotRef(c, "components.serverBindings."+name, slot)
	}
	for name, slot := range comps.ChannelBindings.All() {
		slotRef(c, "components.channelBindings."+name, slot)
	}
	for name, slot := range comps.OperationBindings.All() {
		slotRef(c, "components.operationBindings."+name, slot)
	}
	for name, slot := range comps.MessageBindings.All() {
		slotRef(c, "components.messageBindings."+name, slot)
	}
}

func (c *refCollector) tags(where string, tags []*ReferencedTag) {
	for i, slot := range tags {
		c.tag(where+".tags."+strconv.Itoa(i), slotRef(c, where+".tags."+strconv.Itoa(i), slot))
	}
}

func (c *refCollector) tag(where string, t *Tag) {
	if t == nil {
		return
	}
	slotRef(c, where+".externalDocs", t.ExternalDocs)
}

func (c *refCollector) server(where string, s *Server) {
	if s == nil {
		return
	}
	for name, slot := range s.Variables.All() {
		slotRef(c, where+".variables."+name, slot)
	}
	for i, slot := range s.Security {
		slotRef(c, where+".security."+strconv.Itoa(i), slot)
	}
	c.tags(where, s.Tags)
	slotRef(c, where+".externalDocs", s.ExternalDocs)
	slotRef(c, where+".bindings", s.Bindings)
}

func (c *refCollector) channel(where string, ch *Channel) {
	if ch == nil {
		return
	}
	for name, slot := range ch.Messages.All() {
		c.message(where+".messages."+name, slotRef(c, where+".messages."+name, slot))
	}
	for i, slot := range ch.Servers {
		c.server(where+".servers."+strconv.Itoa(i), slotRef(c, where+".servers."+strconv.Itoa(i), slot))
	}
	for name, slot := range ch.Parameters.All() {
		slotRef(c, where+".parameters."+name, slot)
	}
	c.tags(where, ch.Tags)
	slotRef(c, where+".externalDocs", ch.ExternalDocs)
	slotRef(c, where+".bindings", ch.Bindings)
}

func (c *refCollector) operation(where string, op *Operation) {
	if op == nil {
		return
	}
	c.channel(where+".channel", slotRef(c, where+".channel", op.Channel))
	for i, slot := range op.Security {
		slotRef(c, where+".security."+strconv.Itoa(i), slot)
	}
	c.tags(where, op.Tags)
	slotRef(c, where+".externalDocs", op.ExternalDocs)
	slotRef(c, where+".bindings", op.Bindings)
	for i, slot := range op.Traits {
		c.operationTrait(where+".traits."+strconv.Itoa(i), slotRef(c, where+".traits."+strconv.Itoa(i), slot))
	}
	for i, slot := range op.Messages {
		c.message(where+".messages."+strconv.Itoa(i), slotRef(c, where+".messages."+strconv.Itoa(i), slot))
	}
	c.reply(where+".reply", slotRef(c, where+".reply", op.Reply))
}

func (c *refCollector) operationTrait(where string, t *OperationTrait) {
	if t == nil {
		return
	}
	for i, slot := range t.Security {
		slotRef(c, where+".security."+strconv.Itoa(i), slot)
	}
	c.tags(where, t.Tags)
	slotRef(c, where+".externalDocs", t.ExternalDocs)
	slotRef(c, where+".bindings", t.Bindings)
}

func (c *refCollector) reply(where string, r *OperationReply) {
	if r == nil {
		return
	}
	slotRef(c, where+".address", r.Address)
	c.channel(where+".channel", slotRef(c, where+".channel", r.Channel))
	for i, slot := range r.Messages {
		c.message(where+".messages."+strconv.Itoa(i), slotRef(c, where+".messages."+strconv.Itoa(i), slot))
	}
}

func (c *refCollector) message(where string, m *Message) {
	if m == nil {
		return
	}
	slotRef(c, where+".headers", m.Headers)
	slotRef(c, where+".payload", m.Payload)
	slotRef(c, where+".correlationId", m.CorrelationID)
	c.tags(where, m.Tags)
	slotRef(c, where+".externalDocs", m.ExternalDocs)
	slotRef(c, where+".bindings", m.Bindings)
	for i, slot := range m.Traits {
		c.messageTrait(where+".traits."+strconv.Itoa(i), slotRef(c, where+".traits."+strconv.Itoa(i), slot))
	}
}

func (c *refCollector) messageTrait(where string, t *MessageTrait) {
	if t == nil {
		return
	}
	slotRef(c, where+".headers", t.Headers)
	slotRef(c, where+".correlationId", t.CorrelationID)
	c.tags(where, t.Tags)
	slotRef(c, where+".externalDocs", t.ExternalDocs)
	slotRef(c, where+".bindings", t.Bindings)
}
