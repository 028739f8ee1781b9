//go:build nospecialized

package info

func extensionKindName(Kind) (string, bool) { return "", false }

func parseExtensionKind(string) (Kind, bool) { return 0, false }

func equalExtension(a, b Descriptor) bool { return false }

func childrenExtension(Descriptor) []Descriptor { return nil }

func encodeExtension(Descriptor, *canonWriter) bool { return false }
