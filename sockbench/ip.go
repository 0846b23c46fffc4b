package sockbench

type IPVersion int

const (
	IPAny IPVersion = -1
	IPv4  IPVersion = 4
	IPv6  IPVersion = 6
)
