package cli

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/universalseed/useed/kdf"
)

func runProfile(args []string) int {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	masterKeyHex := fs.String("master-key", "", "64-byte hex-encoded master key (required)")
	password := fs.String("password", "", "profile password")
	_ = fs.Parse(args)

	raw, err := parseHex(*masterKeyHex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --master-key: %v\n", err)
		return 2
	}
	if len(raw) != 64 {
		fmt.Fprintf(os.Stderr, "--master-key must decode to 64 bytes, got %d\n", len(raw))
		return 2
	}
	var masterKey [64]byte
	copy(masterKey[:], raw)

	profileKey := kdf.DeriveProfile(masterKey, *password)
	fmt.Fprintln(os.Stdout, strings.ToLower(hex.EncodeToString(profileKey[:])))
	return 0
}

const helpProfile = `# useed profile

Derive an independent profile key from a master key and a password.

Arguments:
  --master-key <hex>   64-byte hex-encoded master key (required)
  --password <string>  profile password (empty = default profile = master key)

Examples:
  useed profile --master-key <hex> --password "savings"
`
