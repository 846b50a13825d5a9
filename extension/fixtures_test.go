package extension

// Shared test implementations. The dialog family mirrors a typical consumer:
// a category with one required capability and a mix of conforming and
// non-conforming providers.

type basicDialog struct{}

func (basicDialog) Confirm(msg string) bool { return true }

type fancyDialog struct{}

func (fancyDialog) Confirm(msg string) bool { return false }

func (fancyDialog) Animate() {}

type brokenDialog struct{}

func (brokenDialog) Show() {}

// wrongSignatureDialog has a Confirm member with an incompatible signature.
type wrongSignatureDialog struct{}

func (wrongSignatureDialog) Confirm() {}

type confirmer interface {
	Confirm(msg string) bool
}

// namedDialog assigns its own stable identity.
type namedDialog struct{}

func (namedDialog) Confirm(msg string) bool { return true }

func (namedDialog) ExtensionID() string { return "dialog.named" }

// versionedDialog declares a version and metadata.
type versionedDialog struct {
	version string
}

func (versionedDialog) Confirm(msg string) bool { return true }

func (d versionedDialog) ExtensionVersion() string {
	return d.version
}

func (versionedDialog) ExtensionInfo() Info {
	return Info{Label: "Versioned dialog", Description: "test fixture"}
}
