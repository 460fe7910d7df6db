/*
Package inicfg parses, represents and re-serializes a line-oriented, INI-like
configuration format, and encodes the same model to a fixed binary layout.

Text is parsed into an ordered document: a document.Configuration holds
sections in declaration order, each section holds settings in declaration
order, and comments stay attached to the entity they annotate.

	data := []byte("[Server]\n; Listen port\nPort = 8080\n")

	cfg, err := inicfg.Parse(data)
	if err != nil {
		// handle error
	}

	sec, _ := cfg.Get("Server")
	port, _ := sec.Get("Port")
	// port.Value() == "8080", with one pre-comment "Listen port"

Serialize renders the document back to canonical text; EncodeBinary and
DecodeBinary convert it to and from the binary layout, dropping comments.
Load, LoadFile, Save and SaveFile add the stream and file surface, with
golang.org/x/text encodings selected through the Encoding option and BOM-aware
UTF-8 as the default.

Behavior is configured per call with functional options such as
CaseInsensitive, ImplicitSection and CommentDelimiters; nothing is
process-wide. Name lookups are case-sensitive unless CaseInsensitive is
given.

Values are raw strings. Mapping them onto typed Go values is the job of the
bind package, which works strictly from the ordered name-to-value contract
exposed here.
*/
package inicfg
