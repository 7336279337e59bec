package common

// TimestampLayout is the second-resolution layout used in audit log lines.
const TimestampLayout = "2006-01-02 15:04:05"

// BackupStampLayout is the layout appended to backup file names.
const BackupStampLayout = "20060102_150405"
