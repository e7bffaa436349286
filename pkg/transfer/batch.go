package transfer

// Mode selects the transfer direction.
type Mode int

const (
	// ModeGet retrieves files from the remote directory.
	ModeGet Mode = iota
	// ModePut sends files to the remote directory.
	ModePut
)

func (m Mode) String() string {
	if m == ModePut {
		return "put"
	}
	return "get"
}

// BuildBatch produces the ordered command script fed to the transfer
// client. Setup commands always precede per-file commands and quit is
// always last. Filenames are passed through verbatim; no globbing or
// re-expansion happens here.
func BuildBatch(mode Mode, v Variant, dir string, files []string) []string {
	batch := make([]string, 0, len(files)+3)
	if v == VariantSSHCom {
		// This client transfers in ASCII mode by default and needs an
		// explicit directory change; OpenSSH gets the directory on the
		// connection argument instead.
		batch = append(batch, "binary", "cd "+dir)
	}
	for _, file := range files {
		batch = append(batch, mode.String()+" "+file)
	}
	return append(batch, "quit")
}
