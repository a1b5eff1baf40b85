package asyncapi

import (
	"context"
	"fmt"

	"github.com/speakeasy-api/asyncapi/references"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/speakeasy-api/asyncapi/yml"
)

// TagConflict records an occurrence of an inline tag whose name matched an
// already promoted tag but whose content differed. The existing entry wins and
// the conflicting occurrence is still rewritten to reference it.
type TagConflict struct {
	// Name is the shared tag name.
	Name string
	// Existing is the canonical tag already stored under the name.
	Existing *Tag
	// Incoming is the differing tag that was encountered afterwards.
	Incoming *Tag
}

// PromoteTags hoists every inline tag in the document into components.tags,
// keyed by tag name, and rewrites each occurrence to a
// #/components/tags/<name> reference. Occurrences that are already references
// are left untouched. When two inline tags share a name but differ in content
// the first promoted value wins and one TagConflict is reported per differing
// occurrence. Empty and absent tag lists are left as they are and running the
// pass a second time is a no-op.
func PromoteTags(ctx context.Context, doc *AsyncAPI) []TagConflict {
	conflicts := []TagConflict{}
	if doc == nil {
		return conflicts
	}

	for _, loc := range collectTagLocations(doc) {
		for i, slot := range *loc.tags {
			if slot == nil || slot.IsReference() {
				continue
			}

			tag := slot.GetObject()
			if tag == nil {
				continue
			}

			registry := doc.ensureComponents().ensureTags()
			if existing := registry.GetOrZero(tag.Name); existing == nil {
				registry.Set(tag.Name, NewReferenced[Tag](tag))
			} else if canonical := existing.GetObject(); canonical != nil && !nodesEqual[Tag](ctx, canonical, tag) {
				conflicts = append(conflicts, TagConflict{
					Name:     tag.Name,
					Existing: canonical,
					Incoming: tag,
				})
			}

			(*loc.tags)[i] = NewReference[Tag](references.ToComponentTag(tag.Name))
		}
	}

	return conflicts
}

// Processor mutates a document in place, reporting structural conflicts as
// errors.
type Processor func(ctx context.Context, doc *AsyncAPI) error

// PromoteServers hoists inline servers in the root collection into
// components.servers under the same name and rewrites the root entries to
// #/components/servers/<name> references. A components entry under the same
// name with different content is an error.
func PromoteServers(ctx context.Context, doc *AsyncAPI) error {
	if doc == nil {
		return nil
	}
	return promoteEntries(ctx, doc.Servers, func() *sequencedmap.Map[string, *ReferencedServer] { return doc.ensureComponents().ensureServers() }, "server", references.ToComponentServer)
}

// PromoteChannels is the channel counterpart of PromoteServers.
func PromoteChannels(ctx context.Context, doc *AsyncAPI) error {
	if doc == nil {
		return nil
	}
	return promoteEntries(ctx, doc.Channels, func() *sequencedmap.Map[string, *ReferencedChannel] { return doc.ensureComponents().ensureChannels() }, "channel", references.ToComponentChannel)
}

// PromoteOperations is the operation counterpart of PromoteServers.
func PromoteOperations(ctx context.Context, doc *AsyncAPI) error {
	if doc == nil {
		return nil
	}
	return promoteEntries(ctx, doc.Operations, func() *sequencedmap.Map[string, *ReferencedOperation] { return doc.ensureComponents().ensureOperations() }, "operation", references.ToComponentOperation)
}

// PromoteChannelMessages hoists inline messages declared inside root and
// components channels into components.messages, keyed by their map name, and
// rewrites the channel entries to #/components/messages/<name> references.
// Identical content reuses the existing registry entry; differing content
// under the same name is an error.
func PromoteChannelMessages(ctx context.Context, doc *AsyncAPI) error {
	if doc == nil {
		return nil
	}

	return forEachChannel(doc, func(c *Channel) error {
		return promoteEntries(ctx, c.Messages, func() *sequencedmap.Map[string, *ReferencedMessage] { return doc.ensureComponents().ensureMessages() }, "message", references.ToComponentMessage)
	})
}

// PromoteChannelParameters is the parameter counterpart of
// PromoteChannelMessages, targeting components.parameters.
func PromoteChannelParameters(ctx context.Context, doc *AsyncAPI) error {
	if doc == nil {
		return nil
	}

	return forEachChannel(doc, func(c *Channel) error {
		return promoteEntries(ctx, c.Parameters, func() *sequencedmap.Map[string, *ReferencedParameter] { return doc.ensureComponents().ensureParameters() }, "parameter", references.ToComponentParameter)
	})
}

func forEachChannel(doc *AsyncAPI, fn func(c *Channel) error) error {
	for _, ch := range doc.Channels.All() {
		if c := ch.GetObject(); c != nil {
			if err := fn(c); err != nil {
				return err
			}
		}
	}

	if doc.Components != nil {
		for _, ch := range doc.Components.Channels.All() {
			if c := ch.GetObject(); c != nil {
				if err := fn(c); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// promoteEntries moves inline objects from a named collection into the
// registry, leaving references behind. Entries that already hold references
// are untouched. The registry is only materialized when there is something to
// promote.
func promoteEntries[T any, V modelPtr[T]](ctx context.Context, entries *sequencedmap.Map[string, *Referenced[T, V]], registry func() *sequencedmap.Map[string, *Referenced[T, V]], entity string, toRef func(string) references.Reference) error {
	for name, slot := range entries.All() {
		if slot == nil || slot.IsReference() {
			continue
		}

		obj := slot.GetObject()
		if obj == nil {
			continue
		}

		reg := registry()
		if existing := reg.GetOrZero(name); existing != nil {
			canonical := existing.GetObject()
			if canonical == nil || !nodesEqual[T, V](ctx, canonical, obj) {
				return fmt.Errorf("%s %q already exists in components with different content: %w", entity, name, ErrConflict)
			}
		} else {
			reg.Set(name, NewReferenced[T, V](obj))
		}

		entries.Set(name, NewReference[T, V](toRef(name)))
	}

	return nil
}

// nodesEqual compares two objects by their rendered document form.
func nodesEqual[T any, V modelPtr[T]](ctx context.Context, a, b *T) bool {
	return yml.EqualNodes(V(a).toNode(ctx), V(b).toNode(ctx))
}
