package domain

// FlagTrafficLogging enables protocol traffic logs for every session
const FlagTrafficLogging = "traffic_logging"
