package main

import "github.com/steve-jordahllabs/ceph-notification-mgmt/cmd"

func main() {
	cmd.Execute()
}
