package constants

// LabInfoID 单例行的固定主键，lab_info 表里最多只有这一条记录
const LabInfoID = "lab_settings"
