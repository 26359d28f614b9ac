package memory

import (
	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/dongbei-mall/internal/domain"
)

// DefaultUserID — единственный пользователь демо-магазина.
const DefaultUserID int64 = 1

// SeedUser возвращает профиль тестового пользователя, как его создаёт
// первоначальная инициализация базы.
func SeedUser() domain.UserProfile {
	return domain.UserProfile{
		ID:      DefaultUserID,
		Name:    "东北老铁",
		Phone:   "13800000000",
		Address: "黑龙江省哈尔滨市道里区",
		Email:   "user@dongbei.com",
	}
}

// SeedProducts возвращает стартовый каталог из 12 товаров в порядке загрузки.
func SeedProducts() []domain.Product {
	price := decimal.RequireFromString
	return []domain.Product{
		{ID: 1, Category: "特色鲜果", Name: "正宗东北冻梨", Subtitle: "冰凉解腻 传统特色", Description: "精选秋子梨，自然冰冻，化冻后酸甜多汁，是冬季最地道的清口甜品。", Price: price("35.0"), Image: "/images/dongli.jpg", Tags: "时令,生鲜,冰爽"},
		{ID: 2, Category: "特色鲜果", Name: "东北老式冻柿子", Subtitle: "清甜软糯 冰镇口感", Description: "东北特色冻柿子，果肉如同冰沙般绵密，甜度极高，室温微化后用勺子挖着吃绝佳。", Price: price("29.9"), Image: "/images/dongshizi.jpg", Tags: "甜点,冰沙口感"},
		{ID: 3, Category: "特色鲜果", Name: "丹东99红颜草莓", Subtitle: "产地直发 个大味甜", Description: "辽宁丹东特产，个大味甜，奶香浓郁，入口即化，全程冷链顺丰直达。", Price: price("88.0"), Image: "/images/caomei.jpg", Tags: "鲜甜,爆款,冷链"},
		{ID: 4, Category: "特色鲜果", Name: "延边特产苹果梨", Subtitle: "汁多无渣 脆甜可口", Description: "吉林延边特产，结合了苹果的爽脆与梨的多汁，果肉雪白，解渴生津。", Price: price("45.0"), Image: "/images/pingguoli.jpg", Tags: "爽脆,多汁,助消化"},
		{ID: 5, Category: "经典熏酱", Name: "哈尔滨秋林里道斯红肠", Subtitle: "百年老字号 果木熏烤", Description: "肥瘦相间，蒜香浓郁，经过多道传统工序熏烤而成，是地道东北餐桌的灵魂。", Price: price("68.9"), Image: "/images/hongchang.jpg", Tags: "老字号,肉类,熟食"},
		{ID: 6, Category: "经典熏酱", Name: "东北纯肉风干香肠", Subtitle: "越嚼越香 传统手工", Description: "精选农家土猪肉，自然风干，肉质紧实，咸香微甜，下酒追剧绝配。", Price: price("75.0"), Image: "/images/xiangchang.jpg", Tags: "下酒菜,特产,零食"},
		{ID: 7, Category: "经典熏酱", Name: "哈尔滨百年熏酱排骨", Subtitle: "肉质酥烂 酱香浓郁", Description: "老汤慢炖入味，辅以果木微熏，骨酥肉烂，回味无穷，开袋即食或加热均可。", Price: price("89.0"), Image: "/images/paigu.jpg", Tags: "硬菜,熟食,宴请"},
		{ID: 8, Category: "经典熏酱", Name: "东北老式大酱骨", Subtitle: "大块吃肉 满口骨髓", Description: "东北名菜酱骨架，肉多筋糯，配赠吸管吸食骨髓，给您带来极致的吃肉享受。", Price: price("65.0"), Image: "/images/jianggujia.jpg", Tags: "招牌菜,肉食动物"},
		{ID: 9, Category: "珍稀山货", Name: "五常稻花香2号大米", Subtitle: "核心产区 当季新米", Description: "纯正五常核心产区有机种植，颗粒饱满，开锅满屋飘香，剩饭不回生。", Price: price("128.0"), Image: "/images/dami.jpg", Tags: "主打,有机,主食"},
		{ID: 10, Category: "珍稀山货", Name: "大兴安岭野生秋木耳", Subtitle: "肉厚脆耳 纯净无根", Description: "源自黑土地的野生小碗耳，泡发率极高，口感爽脆，凉拌爆炒皆为上品。", Price: price("58.0"), Image: "/images/muer.jpg", Tags: "野生,干货,营养"},
		{ID: 11, Category: "珍稀山货", Name: "野生带根榛蘑", Subtitle: "东北山珍 炖鸡绝配", Description: "纯野生采摘，自然晾晒，保留了大森林最原始的鲜美气息，小鸡炖蘑菇必备。", Price: price("85.0"), Image: "/images/zhenmo.jpg", Tags: "鲜美,特产,干货"},
		{ID: 12, Category: "珍稀山货", Name: "长白山特级人参", Subtitle: "百草之王 滋补佳品", Description: "源自长白山深处，参龄足，根须完整，皂苷含量高，自用泡酒或送礼优选。", Price: price("299.0"), Image: "/images/rensheng.jpg", Tags: "滋补,送礼,名贵"},
	}
}
