package reconstruct

import "github.com/go-cyberiada/cyberiadaml/internal/model"

// Reconstruct runs Pass A (identifier synthesis), Pass B (composite
// promotion), Pass C (structural validation), and Pass D (action
// hygiene) over every state machine in doc, in that order. It is
// idempotent: Pass A only touches nodes/edges whose id is still empty,
// so running Reconstruct again against an already-reconstructed
// document performs no renaming and Passes B-D are no-ops against
// already-clean data.
func Reconstruct(doc *model.Document, opts Options) error {
	for _, sm := range doc.StateMachines {
		nameMap := synthesizeNodeIDs(sm.Root)
		if err := remapEdgeEndpointIDs(sm, nameMap); err != nil {
			return err
		}
		synthesizeEdgeIDs(sm)
		if err := resolveEdgeEndpoints(sm); err != nil {
			return err
		}

		promoteComposites(sm.Root)

		if err := checkStructure(sm, opts); err != nil {
			return err
		}

		if err := hygieneActions(sm.Root, opts); err != nil {
			return err
		}
	}
	return nil
}
