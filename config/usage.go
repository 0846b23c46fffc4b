package config

import "fmt"

// Usage prints the command-line usage text
func Usage() {
	fmt.Println("sockbench measures TCP vs UDP round-trip latency and throughput.")
	fmt.Println("It supports two modes. Usage of each mode is described below:")

	fmt.Println("\nCommon Parameters")
	fmt.Println("================================================================================")
	printFlagUsage("h", "", "Help")
	printFlagUsage("no", "", "Disable logging to file. Logging to file is enabled by default.")
	printFlagUsage("o", "<filename>", "Name of log file. By default, following file names are used:",
		"Server mode: 'sockbenchs.log'",
		"Client mode: 'sockbenchc.log'")
	printFlagUsage("debug", "", "Enable debug information in logging output.")
	printFlagUsage("4", "", "Use only IP v4 version")
	printFlagUsage("6", "", "Use only IP v6 version")
	printPortUsage()
	printDataSizeUsage()

	fmt.Println("\nMode: Server")
	fmt.Println("================================================================================")
	fmt.Println("In this mode, sockbench runs the TCP and UDP echo servers together so a")
	fmt.Println("remote client can benchmark against this host.")
	printFlagUsage("s", "", "Run in server mode.")
	printFlagUsage("ip", "<address>", "Bind only to the specified local IP address.",
		"Default: all addresses.")
	printFlagUsage("ui", "", "Show output in text UI.")

	fmt.Println("\nMode: Client")
	fmt.Println("================================================================================")
	fmt.Println("In this mode, sockbench runs one or both protocol benchmarks. A loopback")
	fmt.Println("destination starts an embedded server; any other destination assumes an")
	fmt.Println("independently started sockbench server.")
	printFlagUsage("c", "<host>", "Destination host: name, FQDN or IP address.",
		"Default: localhost (embedded server).")
	printFlagUsage("p", "<protocol>", "Protocol to benchmark (\"tcp\", \"udp\" or \"both\").",
		"\"both\" runs TCP and UDP sequentially and compares them.",
		"Default: both")
	printIterationUsage()
	printFlagUsage("nc", "", "Skip the connectivity pre-check before a remote benchmark.")
}

func printFlagUsage(flag, info string, helptext ...string) {
	fmt.Printf("\t-%s %s\n", flag, info)
	for _, help := range helptext {
		fmt.Printf("\t\t%s\n", help)
	}
}

func printPortUsage() {
	printFlagUsage("tport", "<number>", "Use specified port number for the TCP echo benchmark.",
		"Default: 8888")
	printFlagUsage("uport", "<number>", "Use specified port number for the UDP echo benchmark.",
		"Default: 8889")
}

func printDataSizeUsage() {
	printFlagUsage("l", "<length>", "Length of the echo payload (format: <num>[KB | MB | GB])",
		"Every iteration sends and expects exactly this many bytes.",
		"Default: 1KB")
}

func printIterationUsage() {
	printFlagUsage("i", "<number>", "Number of round trip iterations per protocol.",
		"Default: 1000")
}
