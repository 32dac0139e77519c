package extract

import "github.com/kanjoflow/kanjo/internal/model"

// BusinessKeywords maps a business type to the keywords that indicate it.
// The order of entries in Tables.Business is significant: when two tables
// score equally against a receipt, the one declared first wins.
type BusinessKeywords struct {
	Type     model.BusinessType
	Keywords []string
}

// ItemKeywords maps a purchased-item category to the substrings that
// indicate it on a receipt line.
type ItemKeywords struct {
	Category string
	Keywords []string
}

// Tables holds the keyword configuration the extractor matches against.
// Treat as read-only after construction.
type Tables struct {
	Business []BusinessKeywords
	Items    []ItemKeywords
	Alcohol  []string
	Meeting  []string
}

// Purchased-item categories recognized by the extractor.
const (
	ItemAlcohol     = "alcohol"
	ItemFood        = "food"
	ItemOffice      = "office"
	ItemTools       = "tools"
	ItemElectronics = "electronics"
	ItemDaily       = "daily"
	ItemMeeting     = "meeting"
)

// DefaultTables returns the built-in keyword tables. The declaration order
// of the business tables doubles as the tie-break order for business-type
// detection, so reordering entries changes behavior.
func DefaultTables() *Tables {
	return &Tables{
		Business: []BusinessKeywords{
			{Type: model.BusinessRestaurant, Keywords: []string{"レストラン", "食堂", "restaurant", "ダイニング", "グリル", "洋食", "和食", "中華", "定食", "食事処"}},
			{Type: model.BusinessCafe, Keywords: []string{"カフェ", "cafe", "coffee", "珈琲", "喫茶", "スターバックス", "ドトール", "タリーズ"}},
			{Type: model.BusinessIzakaya, Keywords: []string{"居酒屋", "酒場", "炉端", "串", "ダイニングバー", "立ち飲み"}},
			{Type: model.BusinessSushi, Keywords: []string{"寿司", "鮨", "すし", "回転寿司"}},
			{Type: model.BusinessYakiniku, Keywords: []string{"焼肉", "焼き肉", "ホルモン", "カルビ"}},
			{Type: model.BusinessFastFood, Keywords: []string{"マクドナルド", "モスバーガー", "ケンタッキー", "吉野家", "松屋", "すき家", "バーガー"}},
			{Type: model.BusinessConvenience, Keywords: []string{"セブン", "セブンイレブン", "ローソン", "ファミリーマート", "ファミマ", "ミニストップ", "コンビニ"}},
			{Type: model.BusinessSupermarket, Keywords: []string{"スーパー", "イオン", "イトーヨーカドー", "西友", "ライフ", "マルエツ", "業務スーパー"}},
			{Type: model.BusinessHomeCenter, Keywords: []string{"ホームセンター", "カインズ", "コーナン", "ビバホーム", "コメリ", "diy"}},
			{Type: model.BusinessElectronics, Keywords: []string{"ヨドバシ", "ビックカメラ", "ヤマダ電機", "エディオン", "ケーズデンキ", "家電"}},
			{Type: model.BusinessDrugstore, Keywords: []string{"ドラッグ", "薬局", "マツモトキヨシ", "ウエルシア", "スギ薬局", "ココカラファイン"}},
			{Type: model.BusinessGasStation, Keywords: []string{"eneos", "エネオス", "出光", "コスモ石油", "シェル", "ガソリン", "給油", "ss"}},
			{Type: model.BusinessParking, Keywords: []string{"パーキング", "駐車場", "タイムズ", "times", "コインパーク", "リパーク", "ナビパーク"}},
			{Type: model.BusinessCleaning, Keywords: []string{"クリーニング", "cleaning", "白洋舎", "洗濯"}},
			{Type: model.BusinessHairSalon, Keywords: []string{"美容室", "美容院", "ヘアサロン", "理容", "バーバー", "カット"}},
			{Type: model.BusinessTaxi, Keywords: []string{"タクシー", "taxi", "乗車", "迎車", "日本交通", "km", "国際自動車"}},
			{Type: model.BusinessTrain, Keywords: []string{"jr", "鉄道", "メトロ", "地下鉄", "新幹線", "乗車券", "特急券", "suica", "pasmo"}},
			{Type: model.BusinessBus, Keywords: []string{"バス", "bus", "高速バス", "リムジン"}},
			{Type: model.BusinessAirline, Keywords: []string{"ana", "jal", "航空", "airline", "空港", "搭乗"}},
		},
		Items: []ItemKeywords{
			{Category: ItemAlcohol, Keywords: []string{"ビール", "生ビール", "日本酒", "焼酎", "ワイン", "ハイボール", "酎ハイ", "サワー", "瓶ビール"}},
			{Category: ItemFood, Keywords: []string{"弁当", "おにぎり", "サンドイッチ", "パン", "定食", "ランチ", "セット"}},
			{Category: ItemOffice, Keywords: []string{"ボールペン", "ノート", "コピー用紙", "ファイル", "付箋", "インク", "トナー", "封筒", "文具"}},
			{Category: ItemTools, Keywords: []string{"ドリル", "工具", "ハンマー", "電動", "ドライバー", "のこぎり", "脚立", "ペンチ"}},
			{Category: ItemElectronics, Keywords: []string{"パソコン", "ノートpc", "プリンタ", "モニター", "キーボード", "マウス", "タブレット", "hdd", "ssd"}},
			{Category: ItemDaily, Keywords: []string{"洗剤", "ティッシュ", "トイレットペーパー", "ゴミ袋", "スポンジ", "マスク", "電池"}},
			{Category: ItemMeeting, Keywords: []string{"お茶", "コーヒー", "茶菓子", "ペットボトル", "ミネラルウォーター", "お菓子"}},
		},
		Alcohol: []string{"ビール", "酒", "ワイン", "焼酎", "ハイボール", "サワー", "アルコール"},
		Meeting: []string{"会議", "打ち合わせ", "打合せ", "ミーティング", "mtg", "商談", "面談"},
	}
}
