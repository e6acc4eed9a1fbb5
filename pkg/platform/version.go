package platform

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/go-cupertino/cupertino/pkg/errors"
)

// MinNativeVersion is the oldest native scaffold this framework can talk to.
// The scaffold reports its version during the ConnectBridge handshake.
const MinNativeVersion = "v1.0.0"

// BridgeInfo describes the connected native scaffold.
type BridgeInfo struct {
	Platform string
	Version  string
}

// ErrIncompatibleBridge is wrapped by handshake version failures.
var ErrIncompatibleBridge = fmt.Errorf("incompatible native bridge")

// CheckNativeVersion validates a scaffold version string against
// MinNativeVersion. A missing "v" prefix is tolerated since scaffolds report
// bare "1.2.3" strings.
func CheckNativeVersion(version string) error {
	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: malformed version %q", ErrIncompatibleBridge, version)
	}
	if semver.Major(v) != semver.Major(MinNativeVersion) {
		return fmt.Errorf("%w: scaffold %s, framework requires major %s", ErrIncompatibleBridge, v, semver.Major(MinNativeVersion))
	}
	if semver.Compare(v, MinNativeVersion) < 0 {
		return fmt.Errorf("%w: scaffold %s older than minimum %s", ErrIncompatibleBridge, v, MinNativeVersion)
	}
	return nil
}

// ConnectBridge installs the native bridge after a version handshake on the
// "cupertino/bridge" channel. On an incompatible or unreachable scaffold the
// bridge is rolled back and an error returned.
func ConnectBridge(bridge NativeBridge) (BridgeInfo, error) {
	SetNativeBridge(bridge)

	result, err := invokeNative("cupertino/bridge", "info", nil)
	if err != nil {
		SetNativeBridge(nil)
		return BridgeInfo{}, fmt.Errorf("bridge handshake: %w", err)
	}

	m, ok := result.(map[string]any)
	if !ok {
		SetNativeBridge(nil)
		return BridgeInfo{}, fmt.Errorf("bridge handshake: %w", &errors.ParseError{
			Channel:  "cupertino/bridge",
			DataType: "BridgeInfo",
			Got:      result,
		})
	}
	info := BridgeInfo{}
	info.Platform, _ = m["platform"].(string)
	info.Version, _ = m["version"].(string)

	if err := CheckNativeVersion(info.Version); err != nil {
		SetNativeBridge(nil)
		errors.Report(&errors.Error{
			Op:      "platform.ConnectBridge",
			Kind:    errors.KindInit,
			Channel: "cupertino/bridge",
			Err:     err,
		})
		return info, err
	}

	return info, nil
}
