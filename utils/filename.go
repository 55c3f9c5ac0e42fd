package utils

import "regexp"

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// ProposalFileName derives the download filename from the client company
// name, with every non-alphanumeric character normalized to an underscore.
// Deterministic: the same company always yields the same name.
func ProposalFileName(companyName string) string {
	return "ForwardWorkx_Proposal_" + unsafeFilenameChars.ReplaceAllString(companyName, "_") + ".pdf"
}
