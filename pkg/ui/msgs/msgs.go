// Package msgs holds the user facing sentences shared by the human
// readable renderers.
package msgs

const (
	MsgSavedAs       = "New package.unmask saved as %s.\nPlease run dispatch-conf or etc-update to merge it."
	MsgUpToDate      = "The unmask file is up-to-date."
	MsgDryRunNotice  = "DRY RUN MODE - No changes were made"
	MsgDropped       = "Dropped stale entry: %s"
	MsgAmbiguous     = "Entry matches several sections and was kept in each: %s"
	MsgUnmasking     = "Unmasking %s (%s)"
	MsgNoMatch       = "No package.mask entry matches %s."
	MsgConfigWritten = "Configuration written to %s"
	MsgSections      = "%d sections, %d blocks, %d atoms"
	MsgUnnamed       = "(unnamed)"
)
