package valueobjects

import "fmt"

type ConnectionType string

const (
	ConnectionFiber     ConnectionType = "Fiber"
	ConnectionCopper    ConnectionType = "Copper"
	ConnectionWireless  ConnectionType = "Wireless"
	ConnectionSatellite ConnectionType = "Satellite"
)

var validConnectionTypes = map[ConnectionType]bool{
	ConnectionFiber:     true,
	ConnectionCopper:    true,
	ConnectionWireless:  true,
	ConnectionSatellite: true,
}

func (ct ConnectionType) String() string {
	return string(ct)
}

func (ct ConnectionType) IsValid() bool {
	return validConnectionTypes[ct]
}

func NewConnectionType(s string) (ConnectionType, error) {
	ct := ConnectionType(s)
	if !ct.IsValid() {
		return "", fmt.Errorf("invalid connection type: %s", s)
	}
	return ct, nil
}

// ConnectionTypes returns all valid connection types.
func ConnectionTypes() []ConnectionType {
	return []ConnectionType{
		ConnectionFiber,
		ConnectionCopper,
		ConnectionWireless,
		ConnectionSatellite,
	}
}
