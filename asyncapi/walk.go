package asyncapi

import (
	"strconv"

	"github.com/speakeasy-api/asyncapi/references"
)

// tagLocation points at one tags-capable list in the document. The slice is
// addressed through the owning struct so rewrites are visible in place.
type tagLocation struct {
	// where describes the location for diagnostics.
	where string
	// tags is the address of the tag list at this location.
	tags *[]*ReferencedTag
}

// collectTagLocations walks the document and returns every location that can
// carry tags. Inline objects in root collections and the components registry
// are visited directly; traits attached to inline operations and messages are
// followed through local component references so that a trait stored once in
// the registry is still visited (exactly once).
func collectTagLocations(doc *AsyncAPI) []tagLocation {
	locations := []tagLocation{
		{where: "info", tags: &doc.Info.Tags},
	}

	seenTraits := map[references.Reference]bool{}

	visitMessage := func(where string, msg *Message) {
		locations = append(locations, tagLocation{where: where, tags: &msg.Tags})
		for i, trait := range msg.Traits {
			if t := resolveMessageTrait(doc, trait, seenTraits); t != nil {
				locations = append(locations, tagLocation{
					where: where + ".traits." + strconv.Itoa(i),
					tags:  &t.Tags,
				})
			}
		}
	}

	visitChannel := func(where string, ch *Channel) {
		locations = append(locations, tagLocation{where: where, tags: &ch.Tags})
		for name, msg := range ch.Messages.All() {
			if m := msg.GetObject(); m != nil {
				visitMessage(where+".messages."+name, m)
			}
		}
	}

	visitOperation := func(where string, op *Operation) {
		locations = append(locations, tagLocation{where: where, tags: &op.Tags})
		for i, trait := range op.Traits {
			if t := resolveOperationTrait(doc, trait, seenTraits); t != nil {
				locations = append(locations, tagLocation{
					where: where + ".traits." + strconv.Itoa(i),
					tags:  &t.Tags,
				})
			}
		}
		for i, msg := range op.Messages {
			if m := msg.GetObject(); m != nil {
				visitMessage(where+".messages."+strconv.Itoa(i), m)
			}
		}
	}

	for name, srv := range doc.Servers.All() {
		if s := srv.GetObject(); s != nil {
			locations = append(locations, tagLocation{where: "servers." + name, tags: &s.Tags})
		}
	}

	for name, ch := range doc.Channels.All() {
		if c := ch.GetObject(); c != nil {
			visitChannel("channels."+name, c)
		}
	}

	for name, op := range doc.Operations.All() {
		if o := op.GetObject(); o != nil {
			visitOperation("operations."+name, o)
		}
	}

	if doc.Components == nil {
		return locations
	}

	for name, srv := range doc.Components.Servers.All() {
		if s := srv.GetObject(); s != nil {
			locations = append(locations, tagLocation{where: "components.servers." + name, tags: &s.Tags})
		}
	}

	for name, ch := range doc.Components.Channels.All() {
		if c := ch.GetObject(); c != nil {
			visitChannel("components.channels."+name, c)
		}
	}

	for name, op := range doc.Components.Operations.All() {
		if o := op.GetObject(); o != nil {
			visitOperation("components.operations."+name, o)
		}
	}

	for name, msg := range doc.Components.Messages.All() {
		if m := msg.GetObject(); m != nil {
			visitMessage("components.messages."+name, m)
		}
	}

	for name, trait := range doc.Components.OperationTraits.All() {
		if t := trait.GetObject(); t != nil {
			ref := references.ToComponentOperationTrait(name)
			if !seenTraits[ref] {
				seenTraits[ref] = true
				locations = append(locations, tagLocation{where: "components.operationTraits." + name, tags: &t.Tags})
			}
		}
	}

	for name, trait := range doc.Components.MessageTraits.All() {
		if t := trait.GetObject(); t != nil {
			ref := references.ToComponentMessageTrait(name)
			if !seenTraits[ref] {
				seenTraits[ref] = true
				locations = append(locations, tagLocation{where: "components.messageTraits." + name, tags: &t.Tags})
			}
		}
	}

	return locations
}

// resolveOperationTrait returns the trait object a slot points at, following
// local references into components.operationTraits. Each registry trait is
// visited at most once across the whole walk.
func resolveOperationTrait(doc *AsyncAPI, slot *ReferencedOperationTrait, seen map[references.Reference]bool) *OperationTrait {
	if slot == nil {
		return nil
	}

	if !slot.IsReference() {
		return slot.GetObject()
	}

	ref := slot.GetReference()
	if !seen[ref] && ref.IsComponents() && ref.Kind() == "operationTraits" && doc.Components != nil {
		if target := doc.Components.OperationTraits.GetOrZero(ref.Name()); target != nil {
			seen[ref] = true
			return target.GetObject()
		}
	}

	return nil
}

// resolveMessageTrait is the message trait counterpart of resolveOperationTrait.
func resolveMessageTrait(doc *AsyncAPI, slot *ReferencedMessageTrait, seen map[references.Reference]bool) *MessageTrait {
	if slot == nil {
		return nil
	}

	if !slot.IsReference() {
		return slot.GetObject()
	}

	ref := slot.GetReference()
	if !seen[ref] && ref.IsComponents() && ref.Kind() == "messageTraits" && doc.Components != nil {
		if target := doc.Components.MessageTraits.GetOrZero(ref.Name()); target != nil {
			seen[ref] = true
			return target.GetObject()
		}
	}

	return nil
}
