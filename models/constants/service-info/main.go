package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "FMDVerse Metadata Explorer"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the FMDVerse metadata explorer API!"
	SERVICE_DESCRIPTION ServiceInfo = "Filter and aggregate service over Foot-and-Mouth Disease Virus sequence metadata."

	SERVICE_ARTIFACT    ServiceInfo = "fmdverse"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("org.fmdverse:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
)
