package desc

type Options struct {
	// Inputs are glob patterns of description files.
	Inputs []string

	// Validate runs bitfield validation on every loaded field.
	Validate bool
}
