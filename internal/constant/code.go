package constant

import "net/http"

// CodeInfo 响应码条目：中英文文案 + HTTP 状态码
type CodeInfo struct {
	CN   string
	EN   string
	HTTP int
}

// 签名信封相关
const (
	CodeMissingParam        = "PAYMENT.MISSING_PARAM"
	CodeExpiredTimestamp    = "PAYMENT.EXPIRED_TIMESTAMP"
	CodeDuplicateRequest    = "PAYMENT.DUPLICATE_REQUEST"
	CodeInvalidMerchant     = "PAYMENT.INVALID_MERCHANT"
	CodeUnsupportedSignType = "PAYMENT.UNSUPPORTED_SIGN_TYPE"
	CodeInvalidSign         = "PAYMENT.INVALID_SIGN"
	CodeRateLimitExceeded   = "PAYMENT.RATE_LIMIT_EXCEEDED"
)

// 商户相关
const (
	CodeMerchantCreateSuccess = "MERCHANT.CREATE_SUCCESS"
	CodeMerchantGetSuccess    = "MERCHANT.GET_SUCCESS"
	CodeMerchantUpdateSuccess = "MERCHANT.UPDATE_SUCCESS"
	CodeMerchantKeySuccess    = "MERCHANT.KEY_REGENERATE_SUCCESS"
	CodeMerchantSearchSuccess = "MERCHANT.SEARCH_SUCCESS"
	CodeMerchantInvalidParams = "MERCHANT.INVALID_PARAMS"
	CodeMerchantNotFound      = "MERCHANT.NOT_FOUND"
)

// 订单相关
const (
	CodeOrderCreateSuccess = "ORDER.CREATE_SUCCESS"
	CodeOrderQuerySuccess  = "ORDER.QUERY_SUCCESS"
	CodeOrderCloseSuccess  = "ORDER.CLOSE_SUCCESS"
	CodeOrderPaySuccess    = "ORDER.PAY_SUCCESS"
	CodeOrderListSuccess   = "ORDER.LIST_SUCCESS"
	CodeOrderInvalidParams = "ORDER.INVALID_PARAMS"
	CodeOrderInvalidAmount = "ORDER.INVALID_AMOUNT"
	CodeOrderDuplicate     = "ORDER.DUPLICATE"
	CodeOrderNotFound      = "ORDER.NOT_FOUND"
	CodeOrderAccessDenied  = "ORDER.ACCESS_DENIED"
	CodeOrderInvalidStatus = "ORDER.INVALID_STATUS"
	CodeOrderCloseConflict = "ORDER.CLOSE_CONFLICT"
)

// 账户相关
const (
	CodeAccountCreateSuccess   = "ACCOUNT.CREATE_SUCCESS"
	CodeAccountGetSuccess      = "ACCOUNT.GET_SUCCESS"
	CodeAccountRechargeSuccess = "ACCOUNT.RECHARGE_SUCCESS"
	CodeAccountWithdrawSuccess = "ACCOUNT.WITHDRAW_SUCCESS"
	CodeAccountTransferSuccess = "ACCOUNT.TRANSFER_SUCCESS"
	CodeAccountFreezeSuccess   = "ACCOUNT.FREEZE_SUCCESS"
	CodeAccountUnfreezeSuccess = "ACCOUNT.UNFREEZE_SUCCESS"
	CodeAccountTxListSuccess   = "ACCOUNT.TRANSACTION_LIST_SUCCESS"
	CodeAccountInvalidParams   = "ACCOUNT.INVALID_PARAMS"
	CodeAccountInvalidAmount   = "ACCOUNT.INVALID_AMOUNT"
	CodeAccountNotFound        = "ACCOUNT.NOT_FOUND"
	CodePayerNotFound          = "ACCOUNT.PAYER_NOT_FOUND"
	CodeReceiverNotFound       = "ACCOUNT.RECEIVER_NOT_FOUND"
	CodeInsufficientBalance    = "ACCOUNT.INSUFFICIENT_BALANCE"
	CodeInsufficientFrozen     = "ACCOUNT.INSUFFICIENT_FROZEN"
	CodeSelfTransfer           = "ACCOUNT.SELF_TRANSFER"
)

// 管理后台相关
const (
	CodeAdminLoginSuccess      = "ADMIN.LOGIN_SUCCESS"
	CodeAdminCreateSuccess     = "ADMIN.CREATE_SUCCESS"
	CodeAdminListSuccess       = "ADMIN.LIST_SUCCESS"
	CodeAdminInvalidParams     = "ADMIN.INVALID_PARAMS"
	CodeAdminInvalidCredential = "ADMIN.INVALID_CREDENTIALS"
	CodeAdminUnauthorized      = "ADMIN.UNAUTHORIZED"
	CodeAdminDuplicate         = "ADMIN.DUPLICATE_USERNAME"
	CodeLogListSuccess         = "LOG.LIST_SUCCESS"
	CodeLogExportSuccess       = "LOG.EXPORT_SUCCESS"
)

const CodeInternalError = "SYSTEM.INTERNAL_ERROR"

// Codes 响应码目录
var Codes = map[string]CodeInfo{
	CodeMissingParam:        {"缺少必要参数", "Missing required parameters", http.StatusBadRequest},
	CodeExpiredTimestamp:    {"请求已过期", "Request expired", http.StatusBadRequest},
	CodeDuplicateRequest:    {"重复请求", "Duplicate request", http.StatusBadRequest},
	CodeInvalidMerchant:     {"无效商户", "Invalid merchant", http.StatusUnauthorized},
	CodeUnsupportedSignType: {"不支持的签名类型", "Unsupported signature type", http.StatusBadRequest},
	CodeInvalidSign:         {"签名验证失败", "Invalid signature", http.StatusUnauthorized},
	CodeRateLimitExceeded:   {"请求频率超出限制", "Rate limit exceeded", http.StatusTooManyRequests},

	CodeMerchantCreateSuccess: {"商户创建成功", "Merchant created successfully", http.StatusCreated},
	CodeMerchantGetSuccess:    {"获取商户信息成功", "Merchant information retrieved successfully", http.StatusOK},
	CodeMerchantUpdateSuccess: {"商户信息更新成功", "Merchant information updated successfully", http.StatusOK},
	CodeMerchantKeySuccess:    {"密钥重新生成成功", "Keys regenerated successfully", http.StatusOK},
	CodeMerchantSearchSuccess: {"商户搜索成功", "Merchants searched successfully", http.StatusOK},
	CodeMerchantInvalidParams: {"缺少必要参数", "Missing required parameters", http.StatusBadRequest},
	CodeMerchantNotFound:      {"商户不存在", "Merchant not found", http.StatusNotFound},

	CodeOrderCreateSuccess: {"订单创建成功", "Order created successfully", http.StatusCreated},
	CodeOrderQuerySuccess:  {"订单查询成功", "Order query successful", http.StatusOK},
	CodeOrderCloseSuccess:  {"订单关闭成功", "Order closed successfully", http.StatusOK},
	CodeOrderPaySuccess:    {"订单支付成功", "Order paid successfully", http.StatusOK},
	CodeOrderListSuccess:   {"订单列表查询成功", "Order list retrieved successfully", http.StatusOK},
	CodeOrderInvalidParams: {"缺少必要参数", "Missing required parameters", http.StatusBadRequest},
	CodeOrderInvalidAmount: {"无效的订单金额", "Invalid order amount", http.StatusBadRequest},
	CodeOrderDuplicate:     {"商户订单号重复", "Duplicate merchant order id", http.StatusBadRequest},
	CodeOrderNotFound:      {"订单不存在", "Order not found", http.StatusNotFound},
	CodeOrderAccessDenied:  {"无权访问该订单", "Access denied", http.StatusForbidden},
	CodeOrderInvalidStatus: {"订单状态不允许该操作", "Order status does not allow this operation", http.StatusBadRequest},
	CodeOrderCloseConflict: {"订单状态已被修改，请重新查询", "Order status has been modified, please query again", http.StatusConflict},

	CodeAccountCreateSuccess:   {"账户创建成功", "Account created successfully", http.StatusCreated},
	CodeAccountGetSuccess:      {"获取账户信息成功", "Account information retrieved successfully", http.StatusOK},
	CodeAccountRechargeSuccess: {"账户充值成功", "Account recharged successfully", http.StatusOK},
	CodeAccountWithdrawSuccess: {"账户提现成功", "Account withdrawal successful", http.StatusOK},
	CodeAccountTransferSuccess: {"转账成功", "Transfer successful", http.StatusOK},
	CodeAccountFreezeSuccess:   {"资金冻结成功", "Funds frozen successfully", http.StatusOK},
	CodeAccountUnfreezeSuccess: {"资金解冻成功", "Funds unfrozen successfully", http.StatusOK},
	CodeAccountTxListSuccess:   {"交易记录查询成功", "Transactions retrieved successfully", http.StatusOK},
	CodeAccountInvalidParams:   {"缺少必要参数", "Missing required parameters", http.StatusBadRequest},
	CodeAccountInvalidAmount:   {"无效的金额", "Invalid amount", http.StatusBadRequest},
	CodeAccountNotFound:        {"账户不存在", "Account not found", http.StatusNotFound},
	CodePayerNotFound:          {"付款账户不存在", "Payer account not found", http.StatusNotFound},
	CodeReceiverNotFound:       {"收款账户不存在", "Receiver account not found", http.StatusNotFound},
	CodeInsufficientBalance:    {"账户余额不足", "Insufficient account balance", http.StatusBadRequest},
	CodeInsufficientFrozen:     {"冻结余额不足", "Insufficient frozen balance", http.StatusBadRequest},
	CodeSelfTransfer:           {"不能转账给自己", "Cannot transfer to self", http.StatusBadRequest},

	CodeAdminLoginSuccess:      {"登录成功", "Login successful", http.StatusOK},
	CodeAdminCreateSuccess:     {"管理员创建成功", "Admin user created successfully", http.StatusCreated},
	CodeAdminListSuccess:       {"管理员列表查询成功", "Admin users retrieved successfully", http.StatusOK},
	CodeAdminInvalidParams:     {"缺少必要参数", "Missing required parameters", http.StatusBadRequest},
	CodeAdminInvalidCredential: {"用户名或密码错误", "Invalid username or password", http.StatusUnauthorized},
	CodeAdminUnauthorized:      {"未授权或令牌无效", "Unauthorized or invalid token", http.StatusUnauthorized},
	CodeAdminDuplicate:         {"用户名已存在", "Username already exists", http.StatusBadRequest},
	CodeLogListSuccess:         {"操作日志查询成功", "Operation logs retrieved successfully", http.StatusOK},
	CodeLogExportSuccess:       {"操作日志导出成功", "Operation logs exported successfully", http.StatusOK},

	CodeInternalError: {"系统内部错误", "Internal server error", http.StatusInternalServerError},
}

// Info 查询响应码条目，未知码按内部错误文案处理
func Info(code string) CodeInfo {
	if info, ok := Codes[code]; ok {
		return info
	}
	return CodeInfo{CN: "未知错误", EN: "Unknown error", HTTP: http.StatusInternalServerError}
}
