package chat

// menuOrder — порядок разделов автоответчика на панели самообслуживания.
var menuOrder = []string{
	"物流进度查询",
	"退换货申请",
	"商品真伪鉴定",
	"加盟与合作",
}

// menuOptions — быстрые вопросы внутри каждого раздела.
var menuOptions = map[string][]string{
	"物流进度查询": {"查询最新订单", "顺丰单号没动", "修改配送时间"},
	"退换货申请":  {"收到货坏了", "不想要了怎么退", "退款多久到账"},
	"商品真伪鉴定": {"如何辨别正宗五常米", "红肠外包装校验", "防伪码扫不出来"},
	"加盟与合作":  {"想开线下加盟店", "大宗采购咨询", "供应商入驻"},
}

// scriptedReplies — заготовленные ответы бота на известные вопросы.
var scriptedReplies = map[string]string{
	"查询最新订单":    "正在调取您的黑土地包裹信息... 顺丰单号 SF1422**** 已发车，预计明天下午抵达！",
	"收到货坏了":     "哎呀真对不住！老铁别上火，请拍摄破损照片发给俺，俺直接给您补发一份新鲜的！",
	"如何辨别正宗五常米": "正宗五常大米有中国地理标志保护产品标识，颗粒细长，开锅满屋香。咱家全是核心产区直供，放心吃！",
	"想开线下加盟店":   "热烈欢迎！请留下您的联系电话，我们的招商负责人会在 2 小时内给您回电。",
}

// greetingText — первое сообщение в новой сессии.
const greetingText = "您好！我是东北味道的首席客服老铁。请点击左侧业务或直接输入，我将为您竭诚服务！🌾"

// fallbackReplyFormat — ответ на вопрос, которого нет в скрипте.
const fallbackReplyFormat = "收到关于“%s”的咨询，正在为您转接高级人工客服..."
